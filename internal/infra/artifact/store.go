// Package artifact renders ticket confirmation documents to the local
// filesystem and returns their paths for storage on the ticket row.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"acacia-booking/internal/pkg/config"
	"acacia-booking/internal/pkg/errs"
)

type TicketDocument struct {
	TicketNumber string
	Kind         string
	CustomerName string
	Email        string
	Summary      string
	IssuedAt     time.Time
}

type FileStore struct {
	dir string
}

func NewFileStore(cfg config.ArtifactConfig) *FileStore {
	return &FileStore{dir: cfg.Dir}
}

// Render writes the confirmation document and returns its path. The document
// name is derived from the ticket number, which is unique per ticket.
func (s *FileStore) Render(doc TicketDocument) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", errs.Wrap(err, "failed to create artifact directory")
	}

	path := filepath.Join(s.dir, doc.TicketNumber+".pdf")

	content := fmt.Sprintf(
		"BOOKING CONFIRMATION\n\nTicket:   %s\nKind:     %s\nName:     %s\nEmail:    %s\nDetails:  %s\nIssued:   %s\n",
		doc.TicketNumber, doc.Kind, doc.CustomerName, doc.Email, doc.Summary,
		doc.IssuedAt.UTC().Format(time.RFC3339),
	)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", errs.Wrap(err, "failed to write ticket artifact")
	}

	return path, nil
}
