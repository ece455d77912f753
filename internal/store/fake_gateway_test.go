package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// fakeGateway scripts responses per "METHOD path" and records calls
type fakeGateway struct {
	responses map[string]json.RawMessage
	errs      map[string]error
	calls     []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		responses: make(map[string]json.RawMessage),
		errs:      make(map[string]error),
	}
}

func (g *fakeGateway) respond(key, payload string) {
	g.responses[key] = json.RawMessage(payload)
}

func (g *fakeGateway) fail(key string, err error) {
	g.errs[key] = err
}

func (g *fakeGateway) handle(method, path string) (json.RawMessage, error) {
	key := method + " " + path
	g.calls = append(g.calls, key)
	if err, ok := g.errs[key]; ok {
		return nil, err
	}
	if payload, ok := g.responses[key]; ok {
		return payload, nil
	}
	return nil, fmt.Errorf("unscripted call: %s", key)
}

func (g *fakeGateway) Get(_ context.Context, path string, _ url.Values) (json.RawMessage, error) {
	return g.handle("GET", path)
}

func (g *fakeGateway) Post(_ context.Context, path string, _ interface{}) (json.RawMessage, error) {
	return g.handle("POST", path)
}

func (g *fakeGateway) Put(_ context.Context, path string, _ interface{}) (json.RawMessage, error) {
	return g.handle("PUT", path)
}

func (g *fakeGateway) Delete(_ context.Context, path string) (json.RawMessage, error) {
	return g.handle("DELETE", path)
}
