package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/nguyentantai21042004/swift-scribe/internal/note"
	"github.com/nguyentantai21042004/swift-scribe/internal/summarizer"
)

type export struct {
	Title      string `json:"title"`
	Transcript string `json:"transcript,omitempty"`
	note.Result
}

// writeOutputs writes <slug>.md and <slug>.json, and <slug>.docx when the
// document can be rendered. An earlier note with the same slug is never
// replaced: the new one gets a job suffix instead. It returns the written paths.
func (p *implProcessor) writeOutputs(ctx context.Context, jobID, title, transcript string, r note.Result) ([]string, error) {
	base := filepath.Join(p.cfg.Paths.Output, Slugify(title))
	taken, err := anyExists(p.fs, base+".md", base+".json", base+".docx")
	if err != nil {
		return nil, err
	}
	if taken {
		base += "-" + uniqueSuffix(jobID)
	}

	md := fmt.Sprintf("# %s\n\n_%s_\n\n%s", title, time.Now().Format("2006-01-02 15:04"), r.Markdown)
	if err := writeFileAtomic(p.fs, base+".md", []byte(md)); err != nil {
		return nil, err
	}

	js, err := json.MarshalIndent(export{Title: title, Transcript: transcript, Result: r}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	if err := writeFileAtomic(p.fs, base+".json", append(js, '\n')); err != nil {
		return nil, err
	}

	outputs := []string{base + ".md", base + ".json"}
	if err := p.writeDocx(title, r, base+".docx"); err != nil {
		p.logger.Warn(ctx, "Failed to write docx for %s: %v", title, err)
	} else {
		outputs = append(outputs, base+".docx")
	}
	return outputs, nil
}

// writeDocx renders through a local temp file because godocx saves by path.
func (p *implProcessor) writeDocx(title string, r note.Result, dst string) error {
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	tmp, err := os.CreateTemp(p.cfg.Paths.Temp, "note-*.docx")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := summarizer.WriteDocx(title, r, tmpPath); err != nil {
		return err
	}
	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return fmt.Errorf("read docx: %w", err)
	}
	return writeFileAtomic(p.fs, dst, data)
}

// writeFileAtomic writes data to a temp file next to path and renames it into place.
func writeFileAtomic(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmpFile, err := afero.TempFile(fs, dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer fs.Remove(tmpPath)

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := fs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
