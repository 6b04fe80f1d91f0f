package catalog

import (
	"database/sql"
	"errors"
	"time"
)

// CachedFile is a rendered file kept in the catalog.
type CachedFile struct {
	Path         string
	FileType     string
	LastModified time.Time
	Content      []byte
}

func (c *Catalog) initFileCache() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS
			file
		(
			path TEXT NOT NULL,
			lastModified TEXT,
			fileType TEXT,
			content BLOB,

			CONSTRAINT path_fileType UNIQUE (path, fileType)
		)
	`)
	return err
}

// CachedFile returns the cached file, or nil if there is none.
func (c *Catalog) CachedFile(path string, fileType string) (*CachedFile, error) {
	row := c.db.QueryRow(`
	SELECT
		path,
		lastModified,
		fileType,
		content
	FROM
		file
	WHERE
		path = ? AND fileType = ?`, path, fileType)

	file := CachedFile{}
	var lastModified string

	err := row.Scan(
		&file.Path,
		&lastModified,
		&file.FileType,
		&file.Content,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	file.LastModified, err = time.Parse(time.RFC1123Z, lastModified)
	if err != nil {
		return nil, err
	}

	return &file, nil
}

// SaveFile stores file, replacing a cached file with the same path and type.
func (c *Catalog) SaveFile(file *CachedFile) error {
	lastModified := file.LastModified.UTC().Format(time.RFC1123Z)

	_, err := c.db.Exec(`
		INSERT OR REPLACE INTO
			file
				(
					path, lastModified, fileType, content
				)
		VALUES
				(?, ?, ?, ?)
	`, file.Path, lastModified, file.FileType, file.Content)

	return err
}
