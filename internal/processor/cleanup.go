package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// moveToArchived moves a processed inbox file to the archived folder so it is
// not picked up again. A file already archived under the same name is kept and
// the new one gets a job suffix.
func (p *implProcessor) moveToArchived(ctx context.Context, jobID, path string) error {
	if err := p.fs.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	name := filepath.Base(path)
	destPath := filepath.Join(p.cfg.Paths.Archived, name)
	taken, err := anyExists(p.fs, destPath)
	if err != nil {
		return err
	}
	if taken {
		ext := filepath.Ext(name)
		destPath = filepath.Join(p.cfg.Paths.Archived, strings.TrimSuffix(name, ext)+"-"+uniqueSuffix(jobID)+ext)
	}

	p.logger.Info(ctx, "Archiving: %s -> %s", path, destPath)

	if err := p.fs.Rename(path, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
