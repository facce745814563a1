// Package tvdb provides a client for the TVDB API v4.
package tvdb

import "time"

// Episode represents a single episode from TVDB.
type Episode struct {
	ID      int
	Season  int
	Episode int
	Name    string
	AirDate time.Time // zero when TVDB has no air date
}

// loginResponse is the TVDB login API response.
type loginResponse struct {
	Status string `json:"status"`
	Data   struct {
		Token string `json:"token"`
	} `json:"data"`
}

// episodesResponse is the TVDB get episodes API response.
type episodesResponse struct {
	Status string `json:"status"`
	Data   struct {
		Episodes []struct {
			ID           int    `json:"id"`
			SeasonNumber int    `json:"seasonNumber"`
			Number       int    `json:"number"`
			Name         string `json:"name"`
			Aired        string `json:"aired"` // YYYY-MM-DD
		} `json:"episodes"`
	} `json:"data"`
	Links struct {
		Next string `json:"next"`
	} `json:"links"`
}
