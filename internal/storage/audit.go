package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/splcricket/auction-bot/internal/models"
)

const (
	auditFileName = "decisions.csv"
	dataDir       = "./data"
)

// AuditLog appends every sale/no-sale decision to a local CSV. The
// sheet stays the system of record; this is the auctioneer's own
// trail for disputes after the fact.
type AuditLog struct {
	mu       sync.Mutex
	filePath string
}

func NewAuditLog() (*AuditLog, error) {
	return NewAuditLogIn(dataDir)
}

// NewAuditLogIn creates the audit log under a specific directory
func NewAuditLogIn(dir string) (*AuditLog, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	filePath := filepath.Join(dir, auditFileName)
	al := &AuditLog{filePath: filePath}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		if err := al.createFile(); err != nil {
			return nil, err
		}
	}

	return al, nil
}

func (al *AuditLog) createFile() error {
	file, err := os.Create(al.filePath)
	if err != nil {
		return fmt.Errorf("failed to create audit file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	headers := []string{"Timestamp", "PlayerName", "Status", "Price", "Team"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	writer.Flush()
	return writer.Error()
}

// Record appends one decision row
func (al *AuditLog) Record(player models.Player, status string, price int, team string) error {
	al.mu.Lock()
	defer al.mu.Unlock()

	file, err := os.OpenFile(al.filePath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open audit file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	record := []string{
		time.Now().Format(time.RFC3339),
		player.Name,
		status,
		strconv.Itoa(price),
		team,
	}
	if err := writer.Write(record); err != nil {
		return fmt.Errorf("failed to write decision: %w", err)
	}
	writer.Flush()
	return writer.Error()
}
