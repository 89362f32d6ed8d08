package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/atomixxxx/cuisine-app/internal/cryptox"
	"github.com/atomixxxx/cuisine-app/internal/filex"
)

// ExportFile is a ready-to-download backup file.
type ExportFile struct {
	Name string
	Data []byte
}

// Export serializes the current dataset as pretty-printed JSON. A
// non-empty password turns the export into an encrypted binary with the
// .enc extension.
func (s *Service) Export(ctx context.Context, password string) (*ExportFile, error) {
	p, err := s.BuildPayload(ctx)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	name := fmt.Sprintf("%s-%s", s.prefix, s.now().UTC().Format("2006-01-02"))
	if password == "" {
		s.log.Info(ctx, "backup exported", "file", name+".json", "bytes", len(data))
		return &ExportFile{Name: name + ".json", Data: data}, nil
	}

	blob, err := cryptox.Encrypt(data, password)
	if err != nil {
		return nil, fmt.Errorf("encrypt payload: %w", err)
	}
	s.log.Info(ctx, "backup exported", "file", name+".enc", "bytes", len(blob))
	return &ExportFile{Name: name + ".enc", Data: blob}, nil
}

// ExportToDir writes an export into dir and returns the full path.
func (s *Service) ExportToDir(ctx context.Context, dir, password string) (string, error) {
	f, err := s.Export(ctx, password)
	if err != nil {
		return "", err
	}
	if _, err := filex.EnsureDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, f.Name)
	if err := filex.WriteFile(path, f.Data); err != nil {
		return "", err
	}
	return path, nil
}
