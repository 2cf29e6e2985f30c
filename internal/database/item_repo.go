package database

import (
	"encoding/json"
	"fmt"

	"github.com/diegoclair/prep-rotation/internal/domain/contract"
	"github.com/diegoclair/prep-rotation/internal/domain/entity"
)

type itemRepo struct {
	db dbConn
}

func newItemRepo(db dbConn) contract.ItemRepo {
	return &itemRepo{db: db}
}

// ReplaceAll swaps the stored snapshot for items, keeping their order.
// Callers should run it inside WithTransaction so readers never see a half-written list.
func (r *itemRepo) ReplaceAll(items []entity.Item) error {
	if _, err := r.db.Exec(`DELETE FROM items`); err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}

	query := `
		INSERT INTO items (position, location, payload)
		VALUES (?, ?, ?)
	`

	for i, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal item %d: %w", i, err)
		}

		_, err = r.db.Exec(query, i, item.Location(), string(payload))
		if err != nil {
			return fmt.Errorf("failed to insert item %d: %w", i, err)
		}
	}

	return nil
}

func (r *itemRepo) List() ([]entity.Item, error) {
	query := `
		SELECT payload
		FROM items
		ORDER BY position ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	defer rows.Close()

	items := []entity.Item{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}

		var item entity.Item
		if err := json.Unmarshal([]byte(payload), &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, nil
}

func (r *itemRepo) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}
