package testutil

import (
	"context"
	"fmt"
	"strings"
)

// Response is a canned result for one command line.
type Response struct {
	Output []byte
	Err    error
}

// FakeCommander is a cmdexec.Commander double. Profile callbacks and stage
// hooks invoke their scripts as "<shell> -c <script>", so responses are keyed
// by that joined command line (e.g. "sh -c gh auth switch work"). Lookup is
// exact match first, then the longest registered prefix, then DefaultResponse.
type FakeCommander struct {
	Responses       map[string]Response
	DefaultResponse *Response

	// Calls records every executed command line in order. EnvCalls records
	// the env map of each RunWithEnv call; binder runs everything through
	// RunWithEnv, so in binder tests Calls[i] and EnvCalls[i] line up.
	Calls    []string
	EnvCalls []map[string]string
}

// NewFakeCommander creates a FakeCommander with no canned responses.
func NewFakeCommander() *FakeCommander {
	return &FakeCommander{Responses: make(map[string]Response)}
}

// Register sets the canned response for a command line key.
func (c *FakeCommander) Register(key, output string, err error) {
	c.Responses[key] = Response{Output: []byte(output), Err: err}
}

// Run records the command line and answers with the matching response.
func (c *FakeCommander) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	line := name
	if len(args) > 0 {
		line += " " + strings.Join(args, " ")
	}
	c.Calls = append(c.Calls, line)
	return c.respond(line)
}

// RunWithEnv additionally records the env map, then answers like Run.
func (c *FakeCommander) RunWithEnv(ctx context.Context, env map[string]string, name string, args ...string) ([]byte, error) {
	c.EnvCalls = append(c.EnvCalls, env)
	return c.Run(ctx, name, args...)
}

func (c *FakeCommander) respond(line string) ([]byte, error) {
	if resp, ok := c.Responses[line]; ok {
		return resp.Output, resp.Err
	}
	best := ""
	for key := range c.Responses {
		if strings.HasPrefix(line, key) && len(key) > len(best) {
			best = key
		}
	}
	if best != "" {
		resp := c.Responses[best]
		return resp.Output, resp.Err
	}
	if c.DefaultResponse != nil {
		return c.DefaultResponse.Output, c.DefaultResponse.Err
	}
	return nil, fmt.Errorf("FakeCommander: no response registered for %q", line)
}

// Called reports whether a command line matching the prefix was executed.
func (c *FakeCommander) Called(prefix string) bool {
	return c.CallCount(prefix) > 0
}

// CallCount counts executed command lines matching the prefix.
func (c *FakeCommander) CallCount(prefix string) int {
	n := 0
	for _, call := range c.Calls {
		if strings.HasPrefix(call, prefix) {
			n++
		}
	}
	return n
}
