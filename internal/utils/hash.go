// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by ComparePassword when the password does
// not match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// dummyHashes caches one throwaway hash per bcrypt cost.
var dummyHashes sync.Map

// HashPassword returns a salted bcrypt hash of password.
//
// A cost outside [bcrypt.MinCost, bcrypt.MaxCost] falls back to
// bcrypt.DefaultCost.
//
// Example usage:
//
//	hash, err := utils.HashPassword("hunter2", bcrypt.DefaultCost)
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), normalizeCost(cost))
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword checks password against a hash produced by HashPassword.
//
// Returns nil on match, ErrPasswordMismatch on mismatch and a wrapped error
// when the hash itself is malformed.
func ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password: %w", err)
	}
}

// BurnPasswordCompare runs a bcrypt comparison against a fixed hash of the
// given cost and discards the result. It is used when the account does not
// exist so that the response time does not reveal whether a username is
// registered; cost must match the one passed to HashPassword.
func BurnPasswordCompare(password string, cost int) {
	_ = bcrypt.CompareHashAndPassword(dummyHash(cost), []byte(password))
}

func dummyHash(cost int) []byte {
	cost = normalizeCost(cost)
	if hash, ok := dummyHashes.Load(cost); ok {
		return hash.([]byte)
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("seltzer"), cost)
	actual, _ := dummyHashes.LoadOrStore(cost, hash)
	return actual.([]byte)
}

func normalizeCost(cost int) int {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}
