// Package domain provides named coordinate domains to scale curve cell
// regions into. The built-in domains are embedded as JSON definitions.
package domain

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/go-spatial/geom"
	"github.com/perimeterx/marshmallow"
)

var (
	//go:embed domains/*.json
	embeddedDomainsJSONFS embed.FS
	embeddedDomainsCache  = make(map[string]*Domain)
)

// Domain is a named coordinate range, with a cap on the curve depth that is
// still meaningful within it.
type Domain struct {
	// Domain identifier
	ID string `validate:"required" json:"id"`
	// Title of this domain, normally used for display to a human
	Title string `json:"title,omitempty"`
	// Brief narrative description of this domain
	Description string `json:"description,omitempty"`
	// Extent is minX, minY, maxX, maxY in the domain's units
	Extent []float64 `validate:"required,len=4" json:"extent"`
	// MaxDepth is the deepest curve recursion that makes sense in this domain
	MaxDepth uint `default:"31" validate:"lte=31" json:"maxDepth,omitempty"`
}

func (d *Domain) UnmarshalJSON(data []byte) error {
	err := defaults.Set(d)
	if err != nil {
		return err
	}
	_, err = marshmallow.Unmarshal(data, d, marshmallow.WithExcludeKnownFieldsFromMap(true))
	if err != nil {
		return err
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	err = validate.Struct(d)
	if err != nil {
		return err
	}
	if d.Extent[0] >= d.Extent[2] || d.Extent[1] >= d.Extent[3] {
		return fmt.Errorf(`extent of domain %q is not ordered as minX, minY, maxX, maxY`, d.ID)
	}
	return nil
}

// GeomExtent returns the domain's extent as a bounding box.
func (d *Domain) GeomExtent() geom.Extent {
	return geom.Extent{d.Extent[0], d.Extent[1], d.Extent[2], d.Extent[3]}
}

func LoadEmbeddedDomain(id string) (Domain, error) {
	var dom Domain
	cached, ok := embeddedDomainsCache[id]
	if ok {
		return *cached, nil
	}
	domJSON, err := embeddedDomainsJSONFS.ReadFile("domains/" + id + ".json")
	if err != nil {
		return dom, fmt.Errorf("unknown domain %q: %w", id, err)
	}
	err = json.Unmarshal(domJSON, &dom)
	if err != nil {
		return dom, err
	}
	embeddedDomainsCache[id] = &dom
	return dom, nil
}

// ListEmbeddedDomainIDs returns the IDs of all built-in domains.
func ListEmbeddedDomainIDs() []string {
	entries, err := embeddedDomainsJSONFS.ReadDir("domains")
	if err != nil {
		panic(fmt.Errorf("could not list embedded domains: %w", err))
	}
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(ids)
	return ids
}
