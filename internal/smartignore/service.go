package smartignore

import (
	"dirscope/pkg/logger"
	"dirscope/pkg/models"
)

// Service combines several strategies into one result
type Service struct {
	rules []Rule
}

// NewService creates a service over rules. With no rules, the built-in
// strategies are used.
func NewService(rules ...Rule) *Service {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Service{rules: rules}
}

// Build returns the union of every strategy's folder and file names
func (s *Service) Build(rootPath string) models.SmartIgnoreResult {
	result := models.NewSmartIgnoreResult(nil, nil)

	for _, rule := range s.rules {
		r := rule.Evaluate(rootPath)
		result.FolderNames.Union(r.FolderNames)
		result.FileNames.Union(r.FileNames)
	}

	logger.Logger.WithFields(map[string]interface{}{
		"root":    rootPath,
		"folders": result.FolderNames.Len(),
		"files":   result.FileNames.Len(),
	}).Debug("Smart ignore names resolved")

	return result
}
