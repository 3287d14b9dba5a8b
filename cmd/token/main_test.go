package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iamasit07/connectz/internal/config"
	"github.com/iamasit07/connectz/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPrintsValidToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "cli-secret", TokenTTLHours: 1}
	var stdout, stderr bytes.Buffer

	require.Equal(t, 0, run([]string{"grader"}, cfg, &stdout, &stderr))
	claims, err := auth.ValidateClientToken("cli-secret", strings.TrimSpace(stdout.String()))
	require.NoError(t, err)
	assert.Equal(t, "grader", claims.Client)
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &config.Config{JWTSecret: "s"}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"grader"}, &config.Config{}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "not configured")
	assert.Empty(t, stdout.String())
}
