package models

import (
	"auction-house/internal/auctionerrors"
	"strings"
)

// Client represents a registered participant of the auction house.
// Clients are matched by pointer identity; two clients with equal fields are distinct.
type Client struct {
	name     string
	email    string
	address  string
	password string
}

// NewClient creates a client, validating every field.
func NewClient(name, email, address, password string) (*Client, error) {
	c := &Client{}
	if err := c.SetName(name); err != nil {
		return nil, err
	}
	if err := c.SetEmail(email); err != nil {
		return nil, err
	}
	if err := c.SetAddress(address); err != nil {
		return nil, err
	}
	if err := c.SetPassword(password); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) Name() string     { return c.name }
func (c *Client) Email() string    { return c.email }
func (c *Client) Address() string  { return c.address }
func (c *Client) Password() string { return c.password }

// SetName sets a non-empty full name
func (c *Client) SetName(name string) error {
	if name == "" {
		return auctionerrors.ErrEmptyClientName
	}
	c.name = name
	return nil
}

// SetEmail sets a non-empty email containing an '@'
func (c *Client) SetEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return auctionerrors.ErrInvalidEmail
	}
	c.email = email
	return nil
}

// SetAddress sets a non-empty, free-form address
func (c *Client) SetAddress(address string) error {
	if address == "" {
		return auctionerrors.ErrEmptyAddress
	}
	c.address = address
	return nil
}

// SetPassword sets a non-empty password. It is stored as provided.
func (c *Client) SetPassword(password string) error {
	if password == "" {
		return auctionerrors.ErrEmptyPassword
	}
	c.password = password
	return nil
}

// Matches reports whether the credentials match exactly.
func (c *Client) Matches(email, password string) bool {
	return c.email == email && c.password == password
}

func (c *Client) String() string {
	return c.name + " " + c.email
}
