package compare

import (
	"fmt"

	"github.com/gear6io/tablediff/catalog"
)

// DiffResult is the outcome of comparing one file-pair (or one-sided path).
// Instances are immutable once returned and owned by the caller.
type DiffResult struct {
	SourcePath    string               `json:"source_path"`
	TargetPath    string               `json:"target_path"`
	IsIdentical   bool                 `json:"is_identical"`
	DiffLines     []string             `json:"diff_lines"`
	SourceOnly    bool                 `json:"source_only"`
	TargetOnly    bool                 `json:"target_only"`
	SourceCatalog *catalog.DataCatalog `json:"source_catalog,omitempty"`
	TargetCatalog *catalog.DataCatalog `json:"target_catalog,omitempty"`

	// Raw content is retained for table rendering downstream, not serialized
	SourceContent []string `json:"-"`
	TargetContent []string `json:"-"`
}

// Status classifies the result for display and summary counting
func (r *DiffResult) Status() string {
	switch {
	case r.SourceOnly:
		return "source-only"
	case r.TargetOnly:
		return "target-only"
	case r.IsIdentical:
		return "identical"
	default:
		return "different"
	}
}

func (r *DiffResult) String() string {
	switch {
	case r.SourceOnly:
		return fmt.Sprintf("File exists only in source: %s", r.SourcePath)
	case r.TargetOnly:
		return fmt.Sprintf("File exists only in target: %s", r.TargetPath)
	case r.IsIdentical:
		return fmt.Sprintf("Files are identical: %s and %s", r.SourcePath, r.TargetPath)
	default:
		return fmt.Sprintf("Files differ: %s and %s", r.SourcePath, r.TargetPath)
	}
}
