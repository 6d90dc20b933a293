package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/AINative-Studio/kwanzaa-sub004/adapters/excel"
	"github.com/AINative-Studio/kwanzaa-sub004/adapters/memlog"
	"github.com/AINative-Studio/kwanzaa-sub004/app"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/core"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/evidence"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/policy"
	"github.com/AINative-Studio/kwanzaa-sub004/internal/batch"
	"github.com/AINative-Studio/kwanzaa-sub004/internal/classifier"
	"github.com/AINative-Studio/kwanzaa-sub004/internal/config"
)

// replayRow is one line of the input file: a full evaluation request
type replayRow struct {
	Query    string            `json:"query"`
	Persona  string            `json:"persona"`
	Toggles  policy.Toggles    `json:"toggles"`
	Override policy.Overrides  `json:"overrides"`
	Evidence []evidence.Record `json:"evidence"`
}

func main() {
	_ = godotenv.Load()

	input := flag.String("input", "", "JSONL file of evaluation requests")
	concurrency := flag.Int64("concurrency", 8, "max concurrent evaluations")
	xlsxOut := flag.String("xlsx", "", "optional spreadsheet path for the replayed decision log")
	flag.Parse()

	if *input == "" {
		log.Fatalf("-input is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	registry, err := config.LoadRegistry(cfg.Policy)
	if err != nil {
		log.Fatalf("Failed to load policy registry: %v", err)
	}

	requests, err := readRequests(*input)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *input, err)
	}

	decisionLog := memlog.NewAdapter()
	service := app.NewEvaluationService(registry, classifier.NewHeuristic(), decisionLog)
	replayer := batch.NewReplayer(service, *concurrency)

	ctx := context.Background()
	results, err := replayer.Replay(ctx, requests)
	if err != nil {
		log.Fatalf("Replay failed: %v", err)
	}

	var refused, failed, nondeterministic int
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
			log.Printf("request %d rejected: %v", res.Index, res.Err)
		case !res.Deterministic:
			nondeterministic++
			log.Printf("request %d produced unstable fingerprints", res.Index)
		case res.Decision.ShouldRefuse:
			refused++
		}
	}

	allowed := len(results) - refused - failed - nondeterministic
	fmt.Printf("replayed %d requests: %d allowed, %d refused, %d rejected, %d unstable\n",
		len(results), allowed, refused, failed, nondeterministic)

	if *xlsxOut != "" {
		if err := writeSpreadsheet(ctx, decisionLog, *xlsxOut); err != nil {
			log.Fatalf("Spreadsheet export failed: %v", err)
		}
		fmt.Printf("decision log written to %s\n", *xlsxOut)
	}
}

// readRequests parses the JSONL input into evaluation requests
func readRequests(path string) ([]app.EvaluateRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var requests []app.EvaluateRequest
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var row replayRow
		if err := json.Unmarshal(scanner.Bytes(), &row); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		persona, err := core.ParsePersonaKey(row.Persona)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		requests = append(requests, app.EvaluateRequest{
			Query:     row.Query,
			Persona:   persona,
			Toggles:   row.Toggles,
			Overrides: row.Override,
			Evidence:  row.Evidence,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

// writeSpreadsheet exports the replayed log for analyst review
func writeSpreadsheet(ctx context.Context, decisionLog *memlog.Adapter, path string) error {
	entries, err := decisionLog.Entries(ctx)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return excel.NewWriter().Export(ctx, f, entries)
}
