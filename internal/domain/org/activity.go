package org

import (
	"context"
	"fmt"
)

func (s *Store) RecordActivity(ctx context.Context, activity RecentActivity) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO activities (activity_type, description, user_id, user_name)
    VALUES ($1, $2, $3, $4)
  `, activity.Type, activity.Description, nullIfEmpty(activity.UserID), activity.UserName)
	if err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

// RecentActivity lists the newest entries first.
func (s *Store) RecentActivity(ctx context.Context, limit int) ([]RecentActivity, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, activity_type, description, COALESCE(user_id::text, ''), user_name, created_at
    FROM activities
    ORDER BY created_at DESC, id
    LIMIT $1
  `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RecentActivity, 0, limit)
	for rows.Next() {
		var a RecentActivity
		if err := rows.Scan(&a.ID, &a.Type, &a.Description, &a.UserID, &a.UserName, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
