package service

import (
	"errors"
	"regexp"
	"strings"
)

// ValidationError is a client-input rejection. Code and Message map directly
// onto the error/message pair of a 400 response.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Code + ": " + e.Message
}

// AsValidationError unwraps err into a *ValidationError, if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// deniedWords is the fixed content denylist. A message containing any of
// these (case-insensitive) is rejected outright.
var deniedWords = []string{"spam", "scam", "viagra", "casino", "bitcoin"}

// submitRule pairs a named reject predicate with the error it produces.
type submitRule struct {
	name  string
	fails func(req *SubmitRequest) bool
	err   *ValidationError
}

// submitRules is the ordered validation chain for contact submissions.
// Rules run against the raw payload, in order; the first failing rule wins.
var submitRules = []submitRule{
	{
		name: "required fields",
		fails: func(req *SubmitRequest) bool {
			return req.Name == "" || req.Email == "" || req.Message == ""
		},
		err: &ValidationError{
			Code:    "Missing required fields",
			Message: "Name, email, and message are required",
		},
	},
	{
		name: "email shape",
		fails: func(req *SubmitRequest) bool {
			return !emailPattern.MatchString(req.Email)
		},
		err: &ValidationError{
			Code:    "Invalid email",
			Message: "Please provide a valid email address",
		},
	},
	{
		name: "message minimum length",
		fails: func(req *SubmitRequest) bool {
			return len([]rune(strings.TrimSpace(req.Message))) < minMessageLength
		},
		err: &ValidationError{
			Code:    "Message too short",
			Message: "Message must be at least 10 characters long",
		},
	},
	{
		name: "message maximum length",
		fails: func(req *SubmitRequest) bool {
			return len([]rune(req.Message)) > maxMessageLength
		},
		err: &ValidationError{
			Code:    "Message too long",
			Message: "Message must be less than 2000 characters",
		},
	},
	{
		name: "content denylist",
		fails: func(req *SubmitRequest) bool {
			lower := strings.ToLower(req.Message)
			for _, word := range deniedWords {
				if strings.Contains(lower, word) {
					return true
				}
			}
			return false
		},
		err: &ValidationError{
			Code:    "Invalid content",
			Message: "Message contains inappropriate content",
		},
	},
}

// validateSubmit evaluates the rule chain and returns the first failure.
func validateSubmit(req *SubmitRequest) *ValidationError {
	for _, rule := range submitRules {
		if rule.fails(req) {
			return rule.err
		}
	}
	return nil
}
