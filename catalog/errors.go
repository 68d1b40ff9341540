package catalog

import "fmt"

// CatalogError reports a catalog that cannot be served from. Both codes are
// startup-fatal: the process cannot answer charter enquiries without its
// fleet and theme data.
type CatalogError struct {
	Code    string
	Path    string
	Message string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Path)
}

func newUnreadableError(path string, cause error) error {
	return &CatalogError{
		Code:    "catalogUnreadable",
		Path:    path,
		Message: fmt.Sprintf("catalog file missing or malformed: %v", cause),
	}
}

func newEmptyError(path string) error {
	return &CatalogError{
		Code:    "catalogEmpty",
		Path:    path,
		Message: "catalog parsed to zero records",
	}
}

// IsUnreadable reports whether err is a catalogUnreadable error.
func IsUnreadable(err error) bool {
	ce, ok := err.(*CatalogError)
	return ok && ce.Code == "catalogUnreadable"
}

// IsEmpty reports whether err is a catalogEmpty error.
func IsEmpty(err error) bool {
	ce, ok := err.(*CatalogError)
	return ok && ce.Code == "catalogEmpty"
}
