package main

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"strings"

	"moviehub/comment"
)

// importComments creates one comment per CSV row. Rows failing validation
// are skipped; store failures abort the import.
func importComments(ctx context.Context, svc comment.Service, r io.Reader, limit int) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	idxTitle, idxComment, err := parseCommentCSVHeader(reader)
	if err != nil {
		return 0, err
	}

	count := 0
	line := 1
	for limit <= 0 || count < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, err
		}
		line++

		c, ok := parseCommentRecord(record, idxTitle, idxComment)
		if !ok {
			slog.Warn("skipping malformed row", "line", line)
			continue
		}

		if _, err := svc.CreateComment(ctx, c); err != nil {
			if errors.Is(err, comment.ErrInvalidTitle) || errors.Is(err, comment.ErrInvalidComment) {
				slog.Warn("skipping invalid row", "line", line, "error", err)
				continue
			}
			return count, err
		}

		count++
	}

	return count, nil
}

func parseCommentCSVHeader(reader *csv.Reader) (int, int, error) {
	header, err := reader.Read()
	if err != nil {
		return 0, 0, err
	}

	idxTitle, idxComment := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "title":
			idxTitle = i
		case "comment":
			idxComment = i
		}
	}
	if idxTitle == -1 || idxComment == -1 {
		return 0, 0, errors.New("missing required columns in csv header")
	}

	return idxTitle, idxComment, nil
}

func parseCommentRecord(record []string, idxTitle, idxComment int) (comment.Comment, bool) {
	if idxTitle >= len(record) || idxComment >= len(record) {
		return comment.Comment{}, false
	}

	return comment.Comment{
		Title:   strings.TrimSpace(record[idxTitle]),
		Comment: strings.TrimSpace(record[idxComment]),
	}, true
}
