// Package models defines the response shapes of the inventory HTTP API.
package models
