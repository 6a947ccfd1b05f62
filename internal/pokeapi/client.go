// Package pokeapi fetches creature records and their sprites from the
// public PokeAPI REST service.
package pokeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public API root
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Item is one fetched creature. It is never modified after construction.
type Item struct {
	ID        int
	Name      string
	SpriteURL string      // empty when the service has no sprite
	Sprite    image.Image // nil until fetched, or when the sprite failed
}

// DisplayName returns the name as shown on screen
func (i Item) DisplayName() string {
	return strings.ToUpper(i.Name)
}

// WithSprite returns a copy of the item carrying img
func (i Item) WithSprite(img image.Image) Item {
	i.Sprite = img
	return i
}

// Config configures the client
type Config struct {
	BaseURL   string        // Default: DefaultBaseURL.
	Timeout   time.Duration // HTTP timeout. Default: 15s.
	MaxBytes  int64         // Max response body size. Default: 4MB.
	UserAgent string
}

func (c *Config) defaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
	if c.MaxBytes <= 0 {
		c.MaxBytes = 4 * 1024 * 1024
	}
	if c.UserAgent == "" {
		c.UserAgent = "creaturecapture/1.0"
	}
}

// Client performs single-attempt GET requests against the API
type Client struct {
	client *http.Client
	config Config
}

// New creates a Client
func New(cfg Config) *Client {
	cfg.defaults()
	return &Client{
		client: &http.Client{Timeout: cfg.Timeout},
		config: cfg,
	}
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// pokemonResponse is the subset of the pokemon resource we read
type pokemonResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
	} `json:"sprites"`
}

// Pokemon fetches the creature with the given identifier. The sprite is not
// downloaded; see Sprite.
func (c *Client) Pokemon(ctx context.Context, id int) (Item, error) {
	url := c.config.BaseURL + "/pokemon/" + strconv.Itoa(id)

	body, err := c.get(ctx, url)
	if err != nil {
		return Item{}, err
	}

	var resp pokemonResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Item{}, &Failure{Kind: DecodeFailure, URL: url, Err: err}
	}
	if resp.Name == "" {
		return Item{}, &Failure{Kind: DecodeFailure, URL: url, Err: fmt.Errorf("missing name")}
	}

	item := Item{ID: resp.ID, Name: resp.Name}
	if item.ID == 0 {
		item.ID = id
	}
	if resp.Sprites.FrontDefault != nil {
		item.SpriteURL = *resp.Sprites.FrontDefault
	}
	return item, nil
}

// Sprite downloads and decodes a sprite image
func (c *Client) Sprite(ctx context.Context, url string) (image.Image, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, &Failure{Kind: DecodeFailure, URL: url, Err: err}
	}
	return img, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Failure{Kind: NetworkFailure, URL: url, Err: fmt.Errorf("new request: %w", err)}
	}
	req.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Failure{Kind: NetworkFailure, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Failure{Kind: ResponseFailure, URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.config.MaxBytes))
	if err != nil {
		return nil, &Failure{Kind: NetworkFailure, URL: url, Err: fmt.Errorf("read body: %w", err)}
	}
	return body, nil
}
