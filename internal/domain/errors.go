package domain

import "errors"

var (
	// ErrInvalidRequest is returned when a request body cannot be decoded.
	ErrInvalidRequest = errors.New("invalid request body")

	// ErrMissingURLOrTitle is returned when a fact-check request has neither a URL nor a title.
	ErrMissingURLOrTitle = errors.New("URL or title is required")

	// ErrMissingURL is returned when a source lookup has no URL.
	ErrMissingURL = errors.New("URL is required")

	// ErrMissingMessages is returned when a chat request carries no messages array.
	ErrMissingMessages = errors.New("messages array is required")

	// ErrNoValidMessages is returned when every chat message was dropped during validation.
	ErrNoValidMessages = errors.New("no valid messages provided")

	// ErrMissingPoliticianName is returned when a news lookup has no name.
	ErrMissingPoliticianName = errors.New("politician name is required")

	// ErrClaimSearchDisabled is returned when no claim search credential is configured.
	ErrClaimSearchDisabled = errors.New("claim search API key not configured")

	// ErrLLMNotConfigured is returned when the chat completion API key is missing.
	ErrLLMNotConfigured = errors.New("chat API key is not configured")

	// ErrLLMUnauthorized is returned when the completion API rejects the credential.
	ErrLLMUnauthorized = errors.New("invalid chat API key")

	// ErrLLMRateLimited is returned when the completion API throttles the caller.
	ErrLLMRateLimited = errors.New("rate limit exceeded, please try again in a moment")

	// ErrLLMInvalidResponse is returned when the completion API answers without choices.
	ErrLLMInvalidResponse = errors.New("invalid response format from chat API")

	// ErrNewsUnavailable is returned when no news query could be fetched at all.
	ErrNewsUnavailable = errors.New("failed to fetch news articles")
)
