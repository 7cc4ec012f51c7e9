package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cavaltron-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRows replays canned rows through pgx.Rows
type fakeRows struct {
	data [][]any
	pos  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Values() ([]any, error) { return r.data[r.pos-1], nil }

func (r *fakeRows) Scan(dest ...any) error {
	return scanInto(r.data[r.pos-1], dest)
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(r.values, dest)
}

func scanInto(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d targets", len(values), len(dest))
	}
	for i, d := range dest {
		switch t := d.(type) {
		case *string:
			*t = values[i].(string)
		case **string:
			if values[i] == nil {
				*t = nil
			} else {
				s := values[i].(string)
				*t = &s
			}
		case *int:
			*t = values[i].(int)
		default:
			return fmt.Errorf("scan: unsupported target %T", d)
		}
	}
	return nil
}

type fakeQuerier struct {
	lastSQL  string
	lastArgs []any
	rows     *fakeRows
	row      fakeRow
	queryErr error
}

func (q *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.lastSQL, q.lastArgs = sql, args
	if q.queryErr != nil {
		return nil, q.queryErr
	}
	return q.rows, nil
}

func (q *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.lastSQL, q.lastArgs = sql, args
	return q.row
}

func TestGetSection(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{values: []any{"hero", nil, "Automação", "Fale Conosco"}}}
		c, err := NewContentRepository(q).GetSection(ctx, "hero")

		require.NoError(t, err)
		assert.Equal(t, []any{"hero"}, q.lastArgs)
		assert.Contains(t, q.lastSQL, "WHERE section = $1")
		assert.Nil(t, c.Title)
		assert.Equal(t, "Automação", *c.Content)
	})

	t.Run("missing row maps to ErrNotFound", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}
		_, err := NewContentRepository(q).GetSection(ctx, "hero")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestListSkills(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{data: [][]any{
		{"1", "Cpu", "Eletrônica", nil, 1},
		{"2", nil, "Retrofit", "Modernização", 2},
	}}}

	skills, err := NewContentRepository(q).ListSkills(context.Background())
	require.NoError(t, err)
	assert.Contains(t, q.lastSQL, "ORDER BY display_order ASC")
	require.Len(t, skills, 2)
	assert.Equal(t, "Cpu", *skills[0].Icon)
	assert.Nil(t, skills[1].Icon)
	assert.Equal(t, 2, skills[1].DisplayOrder)
}

func TestListProjects(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{data: [][]any{
		{"p1", "Painel", "desc", nil, "https://ext", nil, 1},
	}}}

	projects, err := NewContentRepository(q).ListProjects(context.Background())
	require.NoError(t, err)
	assert.Contains(t, q.lastSQL, "ORDER BY display_order ASC")
	require.Len(t, projects, 1)
	assert.Equal(t, "https://ext", *projects[0].ExternalLink)
	assert.Nil(t, projects[0].IframeURL)
}

func TestListContactInfo(t *testing.T) {
	t.Run("empty table returns an empty slice", func(t *testing.T) {
		q := &fakeQuerier{rows: &fakeRows{}}
		items, err := NewContentRepository(q).ListContactInfo(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
		assert.NotContains(t, q.lastSQL, "WHERE")
	})

	t.Run("query error", func(t *testing.T) {
		q := &fakeQuerier{queryErr: errors.New("conn closed")}
		_, err := NewContentRepository(q).ListContactInfo(context.Background())
		assert.EqualError(t, err, "conn closed")
	})

	t.Run("row iteration error", func(t *testing.T) {
		q := &fakeQuerier{rows: &fakeRows{err: errors.New("broken pipe")}}
		_, err := NewContentRepository(q).ListContactInfo(context.Background())
		assert.EqualError(t, err, "broken pipe")
	})
}
