package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedOutput reports history output that is not a commit info object.
var ErrMalformedOutput = errors.New("malformed commit info")

// isoStrictLayout matches git's %cI: numeric offset, "+00:00" rather than "Z".
const isoStrictLayout = "2006-01-02T15:04:05-07:00"

// CommitInfo identifies the most recent commit of a repository.
type CommitInfo struct {
	Hash string `json:"hash"`
	Date string `json:"date"`
}

func (c CommitInfo) validate() error {
	if c.Hash == "" {
		return fmt.Errorf("%w: missing hash", ErrMalformedOutput)
	}
	if c.Date == "" {
		return fmt.Errorf("%w: missing date", ErrMalformedOutput)
	}
	return nil
}

// DecodeCommitInfo reads exactly one JSON object with the fields hash and
// date. Unknown fields, empty values and trailing data are rejected.
func DecodeCommitInfo(r io.Reader) (CommitInfo, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var info CommitInfo
	if err := dec.Decode(&info); err != nil {
		return CommitInfo{}, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return CommitInfo{}, fmt.Errorf("%w: trailing data after object", ErrMalformedOutput)
	}
	if err := info.validate(); err != nil {
		return CommitInfo{}, err
	}
	return info, nil
}

// AppendLine appends the single-line encoding of c, newline included:
//
//	{"hash": "<hash>", "date": "<date>"}
func (c CommitInfo) AppendLine(dst []byte) ([]byte, error) {
	hash, err := json.Marshal(c.Hash)
	if err != nil {
		return dst, err
	}
	date, err := json.Marshal(c.Date)
	if err != nil {
		return dst, err
	}
	dst = append(dst, `{"hash": `...)
	dst = append(dst, hash...)
	dst = append(dst, `, "date": `...)
	dst = append(dst, date...)
	dst = append(dst, "}\n"...)
	return dst, nil
}

// WriteLine writes the single-line encoding of c to w in one call.
func (c CommitInfo) WriteLine(w io.Writer) error {
	line, err := c.AppendLine(nil)
	if err != nil {
		return err
	}
	_, err = w.Write(line)
	return err
}
