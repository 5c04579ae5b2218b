package ports

import "context"

// DocumentEngine is the PDF library boundary. Implementations parse and
// serialize PDFs; the rest of the system never touches PDF bytes.
type DocumentEngine interface {
	// Validate reports whether the file at path parses as a PDF.
	Validate(path string) error

	// PageCount returns the number of pages in the PDF at path.
	PageCount(path string) (int, error)

	// Merge appends all pages of each input, in order, into a new
	// document written to output.
	Merge(ctx context.Context, inputs []string, output string) error
}
