package models

import "time"

// ContentKind is the closed set of output formats produced per request.
// No dynamic registration; the three kinds are fixed at compile time.
type ContentKind string

const (
	KindBlog     ContentKind = "blog"
	KindLinkedIn ContentKind = "linkedin"
	KindX        ContentKind = "x"
)

// AllKinds returns the three content kinds in a stable order.
func AllKinds() []ContentKind {
	return []ContentKind{KindBlog, KindLinkedIn, KindX}
}

const (
	// ContentIDLayout derives a record id from its generation time.
	// Second precision matches the original scheme; two requests finishing
	// within the same second would collide (see Remove/Append callers).
	ContentIDLayout = "20060102150405"

	// TimestampLayout is the human-readable creation time stored alongside.
	TimestampLayout = "2006-01-02 15:04:05"
)

// NewContentID derives the record identifier from the generation timestamp.
func NewContentID(t time.Time) string {
	return t.Format(ContentIDLayout)
}

// GenerationRequest is one user submission. Transient; never persisted on
// its own.
type GenerationRequest struct {
	Campaign       string `json:"campaign"`
	ContentSubject string `json:"content_subject"`
	TargetAudience string `json:"target_audience"`
}

// SearchResult is a single finding returned by the search collaborator.
type SearchResult struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ContentRecord is the persisted unit of work output: one generated text per
// content kind plus the request metadata. Field names and JSON tags define
// the on-disk history layout.
type ContentRecord struct {
	ID              string `json:"id"`
	Timestamp       string `json:"timestamp"`
	Campaign        string `json:"campaign"`
	ContentSubject  string `json:"content_subject"`
	TargetAudience  string `json:"target_audience"`
	BlogContent     string `json:"blog_content"`
	LinkedInContent string `json:"linkedin_content"`
	XContent        string `json:"x_content"`
}

// SetContent stores text under its fixed kind key, so the record shape is
// independent of completion order.
func (r *ContentRecord) SetContent(kind ContentKind, text string) {
	switch kind {
	case KindBlog:
		r.BlogContent = text
	case KindLinkedIn:
		r.LinkedInContent = text
	case KindX:
		r.XContent = text
	}
}

// ContentFor returns the generated text for the given kind.
func (r *ContentRecord) ContentFor(kind ContentKind) string {
	switch kind {
	case KindBlog:
		return r.BlogContent
	case KindLinkedIn:
		return r.LinkedInContent
	case KindX:
		return r.XContent
	}
	return ""
}
