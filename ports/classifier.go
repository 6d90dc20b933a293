package ports

import "github.com/AINative-Studio/kwanzaa-sub004/domain/decision"

// ClassifierPort labels a query's intent. Implementations must be
// deterministic and pure: the same text always yields the same class.
type ClassifierPort interface {
	Classify(text string) decision.QueryClass
}
