package keywords

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed catalogs.json catalog.schema.json
var catalogFiles embed.FS

// GenericIndustry is the fallback catalogue used when an industry tag is not
// recognized. An unknown tag is never an error.
const GenericIndustry = "general"

// Catalog is the weighted keyword set for one industry.
type Catalog struct {
	Industry string
	Keywords []Keyword
}

// Set holds the catalogues for all configured industries.
type Set struct {
	catalogs map[string]Catalog
}

// CatalogError reports a malformed keyword catalogue. Catalogue problems are
// configuration-time failures and surface at engine initialization, never per
// request.
type CatalogError struct {
	Source  string
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("keyword catalog %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("keyword catalog %s: %s", e.Source, e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// catalogDocument is the on-disk shape of a catalogue file.
type catalogDocument struct {
	Industries map[string][]Keyword `json:"industries"`
}

// LoadDefault loads the embedded default catalogue.
func LoadDefault() (*Set, error) {
	data, err := catalogFiles.ReadFile("catalogs.json")
	if err != nil {
		return nil, &CatalogError{Source: "embedded", Message: "missing default catalog", Cause: err}
	}
	return Load(data, "embedded")
}

// LoadFile loads a catalogue from a JSON file, allowing per-tenant overrides
// of the embedded defaults.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CatalogError{Source: path, Message: "failed to read catalog file", Cause: err}
	}
	return Load(data, path)
}

// Load parses and validates catalogue JSON. The document is checked against
// the embedded JSON Schema first, then each keyword is struct-validated.
func Load(data []byte, source string) (*Set, error) {
	if err := validateSchema(data, source); err != nil {
		return nil, err
	}

	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &CatalogError{Source: source, Message: "failed to parse catalog JSON", Cause: err}
	}

	if _, ok := doc.Industries[GenericIndustry]; !ok {
		return nil, &CatalogError{Source: source, Message: fmt.Sprintf("catalog must define a %q industry", GenericIndustry)}
	}

	validate := validator.New()
	catalogs := make(map[string]Catalog, len(doc.Industries))
	for industry, kws := range doc.Industries {
		seen := make(map[string]struct{}, len(kws))
		for _, kw := range kws {
			if err := validate.Struct(kw); err != nil {
				return nil, &CatalogError{
					Source:  source,
					Message: fmt.Sprintf("invalid keyword %q in industry %q", kw.Term, industry),
					Cause:   err,
				}
			}
			if !kw.Category.Valid() {
				return nil, &CatalogError{
					Source:  source,
					Message: fmt.Sprintf("unknown category %q for keyword %q", kw.Category, kw.Term),
				}
			}
			term := strings.ToLower(kw.Term)
			if _, dup := seen[term]; dup {
				return nil, &CatalogError{
					Source:  source,
					Message: fmt.Sprintf("duplicate keyword %q in industry %q", kw.Term, industry),
				}
			}
			seen[term] = struct{}{}
		}
		catalogs[strings.ToLower(industry)] = Catalog{Industry: strings.ToLower(industry), Keywords: kws}
	}

	return &Set{catalogs: catalogs}, nil
}

func validateSchema(data []byte, source string) error {
	schema, err := catalogFiles.ReadFile("catalog.schema.json")
	if err != nil {
		return &CatalogError{Source: source, Message: "missing embedded catalog schema", Cause: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return &CatalogError{Source: source, Message: "schema validation failed during load", Cause: err}
	}
	if !result.Valid() {
		var sb strings.Builder
		for i, desc := range result.Errors() {
			if i > 0 {
				sb.WriteString("; ")
			}
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			sb.WriteString(fmt.Sprintf("%s: %s", field, desc.Description()))
		}
		return &CatalogError{Source: source, Message: sb.String()}
	}
	return nil
}

// ForIndustry returns the catalogue for the given industry tag, falling back
// to the generic catalogue when the tag is unrecognized or empty.
func (s *Set) ForIndustry(tag string) Catalog {
	if cat, ok := s.catalogs[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return cat
	}
	return s.catalogs[GenericIndustry]
}

// Industries lists the configured industry tags in sorted order.
func (s *Set) Industries() []string {
	tags := make([]string, 0, len(s.catalogs))
	for tag := range s.catalogs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
