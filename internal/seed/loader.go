package seed

import (
	"fmt"
	"os"
	"strings"

	"github.com/blaisecz/wellness-outcomes/internal/api/validation"
	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"github.com/goccy/go-json"
)

// LoadDataset reads a JSON dataset ({"organizations": [...], "users": [...]})
// and validates every record. Users must reference a known organization.
func LoadDataset(path string) (domain.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("read dataset: %w", err)
	}

	var dataset domain.Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return domain.Dataset{}, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	if err := ValidateDataset(dataset); err != nil {
		return domain.Dataset{}, fmt.Errorf("dataset %s: %w", path, err)
	}
	return dataset, nil
}

// ValidateDataset checks field constraints, unique ids and user-to-organization references.
func ValidateDataset(dataset domain.Dataset) error {
	if errs := validation.Validate(dataset); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, fe := range errs {
			msgs = append(msgs, fe.Field+" "+fe.Message)
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
	}

	orgs := make(map[string]bool, len(dataset.Organizations))
	for _, org := range dataset.Organizations {
		if orgs[org.OrgID] {
			return fmt.Errorf("%w: duplicate organization %s", domain.ErrInvalidInput, org.OrgID)
		}
		orgs[org.OrgID] = true
	}

	users := make(map[string]bool, len(dataset.Users))
	for _, u := range dataset.Users {
		if !orgs[u.OrgID] {
			return fmt.Errorf("%w: user %s references unknown organization %s", domain.ErrInvalidInput, u.UserID, u.OrgID)
		}
		if users[u.UserID] {
			return fmt.Errorf("%w: duplicate user %s", domain.ErrInvalidInput, u.UserID)
		}
		users[u.UserID] = true
	}
	return nil
}

// WriteDataset stores dataset as indented JSON.
func WriteDataset(path string, dataset domain.Dataset) error {
	data, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	return nil
}
