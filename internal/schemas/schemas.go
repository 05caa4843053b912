// Package schemas defines the payload shapes accepted and produced at the
// books API boundary, with construct-and-validate decoding from untyped
// mappings and mapping serialization for transmission.
package schemas

import "time"

// Book is the read representation of a book record.
type Book struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Publisher     string    `json:"publisher"`
	PublishedDate time.Time `json:"published_date"`
	PageCount     int64     `json:"page_count"`
	Language      string    `json:"language"`
}

// BookUpdate carries the editable catalog fields. It excludes the id and the
// published date; neither changes after a book exists.
type BookUpdate struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	PageCount int64  `json:"page_count"`
	Language  string `json:"language"`
}

// BookCreate carries the submission-time fields of a new book.
type BookCreate struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	Description string `json:"description"`
}

// DecodeBook validates m against the Book shape. On failure the returned
// error is a *ValidationError listing every violating field.
func DecodeBook(m map[string]any) (Book, error) {
	c := &collector{shape: "book"}
	b := Book{
		ID:            c.integer(m, "id"),
		Title:         c.text(m, "title"),
		Author:        c.text(m, "author"),
		Publisher:     c.text(m, "publisher"),
		PublishedDate: c.dateTime(m, "published_date"),
		PageCount:     c.nonNegInteger(m, "page_count"),
		Language:      c.text(m, "language"),
	}
	c.unknownKeys(m, "id", "title", "author", "publisher", "published_date", "page_count", "language")
	if err := c.err(); err != nil {
		return Book{}, err
	}
	return b, nil
}

// DecodeBookUpdate validates m against the BookUpdate shape.
func DecodeBookUpdate(m map[string]any) (BookUpdate, error) {
	c := &collector{shape: "book_update"}
	u := BookUpdate{
		Title:     c.text(m, "title"),
		Author:    c.text(m, "author"),
		Publisher: c.text(m, "publisher"),
		PageCount: c.nonNegInteger(m, "page_count"),
		Language:  c.text(m, "language"),
	}
	c.unknownKeys(m, "title", "author", "publisher", "page_count", "language")
	if err := c.err(); err != nil {
		return BookUpdate{}, err
	}
	return u, nil
}

// DecodeBookCreate validates m against the BookCreate shape. The ISBN is
// required text; no checksum validation is applied.
func DecodeBookCreate(m map[string]any) (BookCreate, error) {
	c := &collector{shape: "book_create"}
	bc := BookCreate{
		Title:       c.text(m, "title"),
		Author:      c.text(m, "author"),
		ISBN:        c.text(m, "isbn"),
		Description: c.text(m, "description"),
	}
	c.unknownKeys(m, "title", "author", "isbn", "description")
	if err := c.err(); err != nil {
		return BookCreate{}, err
	}
	return bc, nil
}

// Serialize returns the plain mapping form of b. Decoding the result yields
// an equal record.
func (b Book) Serialize() map[string]any {
	return map[string]any{
		"id":             b.ID,
		"title":          b.Title,
		"author":         b.Author,
		"publisher":      b.Publisher,
		"published_date": b.PublishedDate.UTC().Format(time.RFC3339),
		"page_count":     b.PageCount,
		"language":       b.Language,
	}
}

func (u BookUpdate) Serialize() map[string]any {
	return map[string]any{
		"title":      u.Title,
		"author":     u.Author,
		"publisher":  u.Publisher,
		"page_count": u.PageCount,
		"language":   u.Language,
	}
}

func (bc BookCreate) Serialize() map[string]any {
	return map[string]any{
		"title":       bc.Title,
		"author":      bc.Author,
		"isbn":        bc.ISBN,
		"description": bc.Description,
	}
}
