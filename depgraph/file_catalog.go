package depgraph

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileKind classifies a catalogued file by extension.
type FileKind int

const (
	KindHeader FileKind = iota
	KindSource
	KindInline
)

func (k FileKind) String() string {
	switch k {
	case KindHeader:
		return "Header"
	case KindSource:
		return "Source"
	case KindInline:
		return "Inline"
	default:
		return "Unknown"
	}
}

// FileRecord is the parsed state of one file, keyed by absolute path. A
// record is shared by every traversal node that reaches the file; Processed
// flips false→true exactly once and every holder sees the change because the
// catalog hands out the same pointer.
type FileRecord struct {
	AbsPath   string
	Name      string
	Module    string
	Kind      FileKind
	Includes  []string
	Processed bool
}

// FileCatalog lazily parses files into FileRecords and caches them by
// absolute path. It is the canonical owner of per-file exploration state.
type FileCatalog struct {
	index   *ModuleIndex
	records map[string]*FileRecord
}

// NewFileCatalog creates an empty catalog over the given module index.
func NewFileCatalog(index *ModuleIndex) *FileCatalog {
	return &FileCatalog{
		index:   index,
		records: make(map[string]*FileRecord),
	}
}

// GetOrCreate returns the shared record for absPath, parsing the file on
// first reference. Unreadable files, unsupported extensions, and files
// outside every indexed module are fatal.
func (c *FileCatalog) GetOrCreate(absPath string) (*FileRecord, error) {
	if record, ok := c.records[absPath]; ok {
		return record, nil
	}

	kind, err := kindForPath(absPath)
	if err != nil {
		return nil, err
	}

	includes, err := extractIncludes(absPath)
	if err != nil {
		return nil, err
	}

	module, ok := c.index.OwnerOf(absPath)
	if !ok {
		return nil, &ModuleResolutionError{Path: absPath}
	}

	record := &FileRecord{
		AbsPath:  absPath,
		Name:     filepath.Base(absPath),
		Module:   module,
		Kind:     kind,
		Includes: includes,
	}
	c.records[absPath] = record
	return record, nil
}

// Records returns every record parsed so far, ordered by path.
func (c *FileCatalog) Records() []*FileRecord {
	records := make([]*FileRecord, 0, len(c.records))
	for _, record := range c.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].AbsPath < records[j].AbsPath
	})
	return records
}

func kindForPath(absPath string) (FileKind, error) {
	ext := strings.TrimPrefix(filepath.Ext(absPath), ".")
	switch ext {
	case "h", "hpp":
		return KindHeader, nil
	case "c", "cpp":
		return KindSource, nil
	case "inl":
		return KindInline, nil
	default:
		return 0, &UnsupportedFileTypeError{Path: absPath, Ext: ext}
	}
}

// extractIncludes scans every line containing a literal "#include" directive
// and takes the last whitespace-separated field with quotes stripped as the
// raw include token. Generated-header includes (".generated.", ".gen.") are
// skipped. A trailing comment on an include line mis-extracts to the
// comment's last word; kept for compatibility with the historical tool.
func extractIncludes(absPath string) ([]string, error) {
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", absPath, err)
	}
	defer file.Close()

	var includes []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "#include") {
			continue
		}
		if strings.Contains(line, ".generated.") || strings.Contains(line, ".gen.") {
			continue
		}

		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 {
			continue
		}
		token := strings.ReplaceAll(fields[len(fields)-1], `"`, "")
		includes = append(includes, token)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", absPath, err)
	}

	return includes, nil
}
