// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/danielhkuo/delegate-tracker/models"
)

//go:embed data/*.json
var embedded embed.FS

var ErrInvalidParty = errors.New("invalid party id")

// Loader reads a party's state dataset from one source: the bundled files,
// a directory, or an http(s) base URL.
type Loader struct {
	source string
	client *http.Client
}

// NewLoader creates a loader for source. An empty source uses the bundled
// datasets.
func NewLoader(source string) *Loader {
	return &Loader{
		source: source,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Load reads and decodes <party>-states.json.
func (l *Loader) Load(ctx context.Context, partyID string) ([]models.StateDefinition, error) {
	if partyID == "" || path.Base(partyID) != partyID || strings.ContainsAny(partyID, `\.`) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidParty, partyID)
	}
	name := partyID + "-states.json"

	var (
		r   io.ReadCloser
		err error
	)
	switch {
	case l.source == "":
		r, err = embedded.Open("data/" + name)
	case strings.HasPrefix(l.source, "http://"), strings.HasPrefix(l.source, "https://"):
		r, err = l.fetch(ctx, strings.TrimRight(l.source, "/")+"/"+name)
	default:
		r, err = os.DirFS(l.source).Open(name)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer r.Close()

	defs, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return defs, nil
}

func (l *Loader) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return resp.Body, nil
}

// stateEntry mirrors one record of the upstream JSON files.
type stateEntry struct {
	ID               int    `json:"id"`
	Initials         string `json:"initials"`
	Name             string `json:"name"`
	TotalDelegates   int    `json:"totalDelegates"`
	AllocationMethod string `json:"allocationMethod"`
	Allocation       string `json:"allocation"` // older files
	ElectionRules    *struct {
		MinThreshold *float64 `json:"minThreshold"`
		WTATrigger   *float64 `json:"wtaTrigger"`
	} `json:"electionRules"`
	ElectionDate string `json:"electionDate"`
	ElectionType string `json:"electionType"`
}

// Decode parses a state dataset and normalizes names and initials.
// Allocation rules are checked later, when the states are loaded into an engine.
func Decode(r io.Reader) ([]models.StateDefinition, error) {
	var entries []stateEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, err
	}

	title := cases.Title(language.English)
	defs := make([]models.StateDefinition, 0, len(entries))
	for _, e := range entries {
		method := e.AllocationMethod
		if method == "" {
			method = e.Allocation
		}

		def := models.StateDefinition{
			ID:               e.ID,
			Initials:         strings.ToUpper(strings.TrimSpace(e.Initials)),
			Name:             title.String(strings.TrimSpace(e.Name)),
			TotalDelegates:   e.TotalDelegates,
			AllocationMethod: models.AllocationMethod(strings.ToLower(method)),
			ElectionDate:     e.ElectionDate,
			ElectionType:     e.ElectionType,
		}
		if e.ElectionRules != nil {
			def.ElectionRules = &models.ElectionRules{
				MinThreshold: e.ElectionRules.MinThreshold,
				WTATrigger:   e.ElectionRules.WTATrigger,
			}
		}
		defs = append(defs, def)
	}
	return defs, nil
}
