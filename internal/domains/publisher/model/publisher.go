package model

import (
	"encoding/xml"
	"time"
)

// Publisher là entity lưu trong bảng publishers
type Publisher struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Address     *string   `json:"address,omitempty" db:"address"`
	Website     *string   `json:"website,omitempty" db:"website"`
	Email       *string   `json:"email,omitempty" db:"email"`
	Phone       *string   `json:"phone,omitempty" db:"phone"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// PublisherRequest is the body of POST /publishers and PUT /publishers/:id.
// It never carries an id.
type PublisherRequest struct {
	Name        string  `json:"name"`
	Address     *string `json:"address,omitempty"`
	Website     *string `json:"website,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Description *string `json:"description,omitempty"`
}

type PublisherResponse struct {
	XMLName     xml.Name  `json:"-" yaml:"-" xml:"publisher"`
	ID          int64     `json:"id" yaml:"id" xml:"id"`
	Name        string    `json:"name" yaml:"name" xml:"name"`
	Address     *string   `json:"address,omitempty" yaml:"address,omitempty" xml:"address,omitempty"`
	Website     *string   `json:"website,omitempty" yaml:"website,omitempty" xml:"website,omitempty"`
	Email       *string   `json:"email,omitempty" yaml:"email,omitempty" xml:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty" yaml:"phone,omitempty" xml:"phone,omitempty"`
	Description *string   `json:"description,omitempty" yaml:"description,omitempty" xml:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at" xml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at" xml:"updated_at"`
}

// PublisherListXML wraps a list so the XML body has a single root element.
type PublisherListXML struct {
	XMLName    xml.Name            `xml:"publishers"`
	Publishers []PublisherResponse `xml:"publisher"`
}

// ============================================
// MAPPER
// ============================================

// NewPublisher builds an unsaved entity from a request. ID stays zero until the store assigns one.
func NewPublisher(req *PublisherRequest) *Publisher {
	pub := &Publisher{}
	ApplyRequest(req, pub)
	return pub
}

// ApplyRequest copies the request onto an existing entity field by field.
// Name is always overwritten; optional fields are only overwritten when present in the request.
// ID and CreatedAt are never touched.
func ApplyRequest(req *PublisherRequest, pub *Publisher) {
	pub.Name = req.Name
	if req.Address != nil {
		pub.Address = copyString(req.Address)
	}
	if req.Website != nil {
		pub.Website = copyString(req.Website)
	}
	if req.Email != nil {
		pub.Email = copyString(req.Email)
	}
	if req.Phone != nil {
		pub.Phone = copyString(req.Phone)
	}
	if req.Description != nil {
		pub.Description = copyString(req.Description)
	}
}

func (p *Publisher) ToResponse() *PublisherResponse {
	return &PublisherResponse{
		ID:          p.ID,
		Name:        p.Name,
		Address:     p.Address,
		Website:     p.Website,
		Email:       p.Email,
		Phone:       p.Phone,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToResponses maps a slice and keeps the store order. Never returns nil.
func ToResponses(pubs []*Publisher) []PublisherResponse {
	responses := make([]PublisherResponse, 0, len(pubs))
	for _, pub := range pubs {
		responses = append(responses, *pub.ToResponse())
	}
	return responses
}

// Clone returns a deep copy so callers can mutate without touching shared state.
func (p *Publisher) Clone() *Publisher {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Address = copyString(p.Address)
	cp.Website = copyString(p.Website)
	cp.Email = copyString(p.Email)
	cp.Phone = copyString(p.Phone)
	cp.Description = copyString(p.Description)
	return &cp
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
