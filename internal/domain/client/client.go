package client

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/orris-inc/toolbox/internal/shared/biztime"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrNameRequired   = errors.New("client name is required")
)

// Details are the editable fields of a client record.
type Details struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	Notes   string
}

func (d Details) normalize() (Details, error) {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return d, ErrNameRequired
	}
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Address = strings.TrimSpace(d.Address)
	d.City = strings.TrimSpace(d.City)
	return d, nil
}

// Client is an entry in a user's client book, used as the recipient of
// generated invoices and quotes.
type Client struct {
	id        uint
	userID    uint
	details   Details
	createdAt time.Time
	updatedAt time.Time
}

func NewClient(userID uint, details Details) (*Client, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	now := biztime.NowUTC()
	return &Client{userID: userID, details: d, createdAt: now, updatedAt: now}, nil
}

func ReconstructClient(id, userID uint, details Details, createdAt, updatedAt time.Time) *Client {
	return &Client{id: id, userID: userID, details: details, createdAt: createdAt, updatedAt: updatedAt}
}

func (c *Client) ID() uint             { return c.id }
func (c *Client) UserID() uint         { return c.userID }
func (c *Client) Details() Details     { return c.details }
func (c *Client) CreatedAt() time.Time { return c.createdAt }
func (c *Client) UpdatedAt() time.Time { return c.updatedAt }

func (c *Client) SetID(id uint) {
	if c.id == 0 {
		c.id = id
	}
}

func (c *Client) Update(details Details) error {
	d, err := details.normalize()
	if err != nil {
		return err
	}
	c.details = d
	c.updatedAt = biztime.NowUTC()
	return nil
}
