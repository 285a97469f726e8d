package router

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/zephyrhq/zephyr/core/handler"
)

// methodAll is the handlers-map key for routes registered via Handle.
const methodAll = ""

// node is one segment of the routing tree. Children are matched in priority
// order: static, then parameter, then wildcard.
type node[C handler.Context] struct {
	static   map[string]*node[C]
	param    *node[C]
	wildcard *node[C]

	// paramName is set on param children and names the captured segment.
	paramName string

	// handlers and patterns are keyed by HTTP method; methodAll catches
	// every method not registered explicitly.
	handlers map[string]handler.HandlerFunc[C]
	patterns map[string]string

	// mount delegates the remaining path to a nested handler.
	mount       http.Handler
	mountPrefix string
}

// routeParams accumulates captured path parameters during a tree walk.
// Keys and values stay index-aligned; truncate rolls back a failed branch.
type routeParams struct {
	keys   []string
	values []string
}

func (p *routeParams) add(key, value string) {
	p.keys = append(p.keys, key)
	p.values = append(p.values, value)
}

func (p *routeParams) len() int { return len(p.keys) }

func (p *routeParams) truncate(n int) {
	p.keys = p.keys[:n]
	p.values = p.values[:n]
}

func (p *routeParams) toMap() map[string]string {
	if len(p.keys) == 0 {
		return nil
	}
	m := make(map[string]string, len(p.keys))
	for i, k := range p.keys {
		m[k] = p.values[i]
	}
	return m
}

// splitPath breaks a URL path into its non-empty segments, so repeated and
// trailing slashes never affect matching.
func splitPath(p string) []string {
	parts := strings.Split(p, "/")
	segs := parts[:0]
	for _, s := range parts {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// insert registers a handler at pattern for the given method, growing the
// tree as needed. It panics on malformed patterns since registration errors
// are programmer mistakes that should fail at startup.
func (n *node[C]) insert(method, pattern string, h handler.HandlerFunc[C]) *node[C] {
	if pattern == "" || pattern[0] != '/' {
		panic(fmt.Errorf("%w: %q", ErrInvalidPattern, pattern))
	}

	segs := splitPath(pattern)
	seen := make(map[string]bool)

	curr := n
	for i, seg := range segs {
		switch {
		case seg == "*":
			if i != len(segs)-1 {
				panic(fmt.Errorf("%w: %q", ErrWildcardPosition, pattern))
			}
			if curr.wildcard == nil {
				curr.wildcard = &node[C]{}
			}
			curr = curr.wildcard

		case len(seg) > 1 && seg[0] == '{' && seg[len(seg)-1] == '}':
			name := seg[1 : len(seg)-1]
			if name == "" {
				panic(fmt.Errorf("%w: empty parameter in %q", ErrInvalidPattern, pattern))
			}
			if seen[name] {
				panic(fmt.Errorf("%w: %q appears twice in %q", ErrDuplicateParam, name, pattern))
			}
			seen[name] = true
			if curr.param == nil {
				curr.param = &node[C]{paramName: name}
			} else if curr.param.paramName != name {
				panic(fmt.Errorf("%w: %q vs %q at %q", ErrDuplicateParam, curr.param.paramName, name, pattern))
			}
			curr = curr.param

		default:
			if curr.static == nil {
				curr.static = make(map[string]*node[C])
			}
			child, ok := curr.static[seg]
			if !ok {
				child = &node[C]{}
				curr.static[seg] = child
			}
			curr = child
		}
	}

	if curr.handlers == nil {
		curr.handlers = make(map[string]handler.HandlerFunc[C])
		curr.patterns = make(map[string]string)
	}
	curr.handlers[method] = h
	curr.patterns[method] = pattern
	return curr
}

// insertMount attaches a nested handler at pattern. The mount answers the
// pattern itself and everything below it.
func (n *node[C]) insertMount(pattern string, sub http.Handler) {
	prefix := "/" + strings.Join(splitPath(pattern), "/")
	if prefix == "/" {
		prefix = ""
	}

	stub := func(ctx C) handler.Response { return nil }
	exact := n.insert(methodAll, pattern, stub)
	exact.mount = sub
	exact.mountPrefix = prefix

	deep := n.insert(methodAll, strings.TrimSuffix(pattern, "/")+"/*", stub)
	deep.mount = sub
	deep.mountPrefix = prefix
}

// endpoint reports whether this node terminates at least one route.
func (n *node[C]) endpoint() bool {
	return len(n.handlers) > 0 || n.mount != nil
}

// match walks the tree for the given segments, capturing parameters into ps.
// Failed branches backtrack, rolling captured parameters back with them.
func (n *node[C]) match(segs []string, ps *routeParams) *node[C] {
	if len(segs) == 0 {
		if n.endpoint() {
			return n
		}
		// A trailing-slash request like /assets/ still reaches the
		// wildcard with an empty remainder.
		if n.wildcard != nil && n.wildcard.endpoint() {
			ps.add("*", "")
			return n.wildcard
		}
		return nil
	}

	head, tail := segs[0], segs[1:]

	if child, ok := n.static[head]; ok {
		mark := ps.len()
		if m := child.match(tail, ps); m != nil {
			return m
		}
		ps.truncate(mark)
	}

	if n.param != nil {
		mark := ps.len()
		ps.add(n.param.paramName, head)
		if m := n.param.match(tail, ps); m != nil {
			return m
		}
		ps.truncate(mark)
	}

	if n.wildcard != nil && n.wildcard.endpoint() {
		ps.add("*", strings.Join(segs, "/"))
		return n.wildcard
	}

	return nil
}

// allowedMethods lists the methods registered on this node, sorted for
// stable Allow headers.
func (n *node[C]) allowedMethods() []string {
	methods := make([]string, 0, len(n.handlers))
	for m := range n.handlers {
		if m == methodAll {
			continue
		}
		methods = append(methods, m)
	}
	slices.Sort(methods)
	return methods
}

// routes collects the registered route table in depth-first order.
func (n *node[C]) routes() []Route {
	var out []Route
	for method, pattern := range n.patterns {
		name := method
		if name == methodAll {
			name = "*"
		}
		out = append(out, Route{Method: name, Pattern: pattern})
	}

	keys := make([]string, 0, len(n.static))
	for k := range n.static {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		out = append(out, n.static[k].routes()...)
	}
	if n.param != nil {
		out = append(out, n.param.routes()...)
	}
	if n.wildcard != nil {
		out = append(out, n.wildcard.routes()...)
	}
	return out
}
