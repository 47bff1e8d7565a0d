package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/roemer/gomanifest/pkg/common"
	"github.com/roemer/gomanifest/pkg/selector"
)

// The serialized form of an entry, with the channel as its manifest tag.
type entryView struct {
	Id              string `json:"id" yaml:"id"`
	Type            string `json:"type" yaml:"type"`
	Label           string `json:"label" yaml:"label"`
	Url             string `json:"url" yaml:"url"`
	ReleaseTime     string `json:"releaseTime" yaml:"releaseTime"`
	Time            string `json:"time,omitempty" yaml:"time,omitempty"`
	Sha1            string `json:"sha1,omitempty" yaml:"sha1,omitempty"`
	ComplianceLevel int    `json:"complianceLevel,omitempty" yaml:"complianceLevel,omitempty"`
}

func newEntryView(entry common.ReleaseEntry) (*entryView, error) {
	label, err := selector.Display(entry)
	if err != nil {
		return nil, err
	}
	return &entryView{
		Id:              entry.Id,
		Type:            entry.Type(),
		Label:           label,
		Url:             entry.Url,
		ReleaseTime:     entry.ReleaseTime,
		Time:            entry.Time,
		Sha1:            entry.Sha1,
		ComplianceLevel: entry.ComplianceLevel,
	}, nil
}

// Writes a single entry in the given format.
func Render(w io.Writer, entry common.ReleaseEntry, format common.OutputFormat) error {
	view, err := newEntryView(entry)
	if err != nil {
		return err
	}
	switch format {
	case common.OUTPUT_FORMAT_JSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(view)
	case common.OUTPUT_FORMAT_YAML:
		content, err := yaml.Marshal(view)
		if err != nil {
			return err
		}
		_, err = w.Write(content)
		return err
	case common.OUTPUT_FORMAT_TEXT, "":
		_, err = fmt.Fprintf(w, "%s\n  Type:     %s\n  Url:      %s\n  Released: %s\n", view.Label, view.Type, view.Url, view.ReleaseTime)
		return err
	}
	return fmt.Errorf("unknown output format '%s'", format)
}

// Writes a list of entries, one label per line in text format.
func RenderList(w io.Writer, entries []common.ReleaseEntry, format common.OutputFormat) error {
	views := make([]*entryView, 0, len(entries))
	for _, entry := range entries {
		view, err := newEntryView(entry)
		if err != nil {
			return err
		}
		views = append(views, view)
	}
	switch format {
	case common.OUTPUT_FORMAT_JSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(views)
	case common.OUTPUT_FORMAT_YAML:
		content, err := yaml.Marshal(views)
		if err != nil {
			return err
		}
		_, err = w.Write(content)
		return err
	case common.OUTPUT_FORMAT_TEXT, "":
		for _, view := range views {
			if _, err := fmt.Fprintf(w, "%-24s %s\n", view.Label, view.ReleaseTime); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown output format '%s'", format)
}
