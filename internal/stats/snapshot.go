package stats

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
)

// Snapshot is one sampling instant.
type Snapshot struct {
	Time               time.Time `json:"time"`
	TotalMemMB         float64   `json:"total_mem_mb"`
	FreeMemMB          float64   `json:"free_mem_mb"`
	MemUsagePercent    float64   `json:"mem_usage_percent"`
	CPUUsage           float64   `json:"cpu_usage_percent"`
	ContextSwitches    int64     `json:"context_switches_per_sec"`
	ThreadCount        int64     `json:"thread_count"`
	HandleCount        int64     `json:"handle_count"`
	SystemCalls        int64     `json:"system_calls_per_sec"`
	DiskReadBytes      int64     `json:"disk_read_bytes_per_sec"`
	DiskWriteBytes     int64     `json:"disk_write_bytes_per_sec"`
	AvgDiskSecPerRead  float64   `json:"avg_disk_sec_per_read"`
	AvgDiskSecPerWrite float64   `json:"avg_disk_sec_per_write"`
}

func (s Snapshot) String() string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "Total memory size: %s Mbytes\n", num(s.TotalMemMB))
	fmt.Fprintf(&b, "Free memory: %s Mbytes\n", num(s.FreeMemMB))
	fmt.Fprintf(&b, "Memory usage: %s%%\n", num(s.MemUsagePercent))
	fmt.Fprintf(&b, "CPU usage: %s%%\n", num(s.CPUUsage))
	fmt.Fprintf(&b, "Context switches: %d\n", s.ContextSwitches)
	fmt.Fprintf(&b, "No. threads: %d\n", s.ThreadCount)
	fmt.Fprintf(&b, "No. handles: %d\n", s.HandleCount)
	fmt.Fprintf(&b, "System calls: %d\n", s.SystemCalls)
	fmt.Fprintf(&b, "Bytes read from the disk: %d bytes\n", s.DiskReadBytes)
	fmt.Fprintf(&b, "Bytes written to the disk: %d bytes\n", s.DiskWriteBytes)
	fmt.Fprintf(&b, "Avg. disk reading time: %ss\n", num(s.AvgDiskSecPerRead))
	fmt.Fprintf(&b, "Avg. disk writing time: %ss\n", num(s.AvgDiskSecPerWrite))
	return b.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Renderer turns a Snapshot into display text.
type Renderer interface {
	Render(Snapshot) (string, error)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(Snapshot) (string, error)

func (f RenderFunc) Render(s Snapshot) (string, error) { return f(s) }

// DefaultRenderer renders with Snapshot.String.
var DefaultRenderer Renderer = RenderFunc(func(s Snapshot) (string, error) {
	return s.String(), nil
})

type templateRenderer struct {
	tmpl *template.Template
}

// NewTemplateRenderer parses text as a text/template executed against each
// Snapshot. The sprig function set is available.
func NewTemplateRenderer(text string) (Renderer, error) {
	tmpl, err := template.New("stats").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse stats template: %w", err)
	}
	return &templateRenderer{tmpl: tmpl}, nil
}

func (r *templateRenderer) Render(s Snapshot) (string, error) {
	var b bytes.Buffer
	if err := r.tmpl.Execute(&b, s); err != nil {
		return "", fmt.Errorf("render stats template: %w", err)
	}
	return b.String(), nil
}
