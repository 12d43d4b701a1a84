package dto

import "github.com/ankoehn/ai-content-writer/models"

// GenerateContentRequestDTO is the body of POST /contents. Field presence is
// validated by the generator itself, not by binding tags, so a missing field
// surfaces as a structured VALIDATION error.
type GenerateContentRequestDTO struct {
	Campaign       string `json:"campaign" example:"Launch"`
	ContentSubject string `json:"content_subject" example:"electric bikes"`
	TargetAudience string `json:"target_audience" example:"urban commuters"`
}

// ToModel maps the transport shape onto the domain request.
func (d GenerateContentRequestDTO) ToModel() models.GenerationRequest {
	return models.GenerationRequest{
		Campaign:       d.Campaign,
		ContentSubject: d.ContentSubject,
		TargetAudience: d.TargetAudience,
	}
}

// ContentDTO exposes one history record to API consumers.
type ContentDTO struct {
	ID              string `json:"id"`
	Timestamp       string `json:"timestamp"`
	Campaign        string `json:"campaign"`
	ContentSubject  string `json:"content_subject"`
	TargetAudience  string `json:"target_audience"`
	BlogContent     string `json:"blog_content"`
	LinkedInContent string `json:"linkedin_content"`
	XContent        string `json:"x_content"`
}

// NewContentDTO constructs ContentDTO from a models.ContentRecord.
func NewContentDTO(r models.ContentRecord) ContentDTO {
	return ContentDTO{
		ID:              r.ID,
		Timestamp:       r.Timestamp,
		Campaign:        r.Campaign,
		ContentSubject:  r.ContentSubject,
		TargetAudience:  r.TargetAudience,
		BlogContent:     r.BlogContent,
		LinkedInContent: r.LinkedInContent,
		XContent:        r.XContent,
	}
}
