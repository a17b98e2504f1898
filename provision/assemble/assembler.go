/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package assemble

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/toolsmith/provision/metrics"
	"chainguard.dev/toolsmith/provision/policy"
	"chainguard.dev/toolsmith/provision/sandbox"
	"chainguard.dev/toolsmith/provision/schema"
	"chainguard.dev/toolsmith/provision/tool"
	"chainguard.dev/toolsmith/provision/wrap"
	"github.com/chainguard-dev/clog"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// PatchToolConfig gates the patch-application tool.
type PatchToolConfig struct {
	Enabled     bool     `yaml:"enabled,omitempty" json:"enabled,omitempty" env:"TOOLSMITH_PATCH_TOOL"`
	AllowModels []string `yaml:"allowModels,omitempty" json:"allowModels,omitempty" env:"TOOLSMITH_PATCH_TOOL_MODELS"`
}

// Config carries everything the assembler needs for one session.
type Config struct {
	// Policy is the tool-policy slice of the configuration document.
	Policy *policy.Config

	// SessionKey identifies the session and classifies subagent sessions.
	SessionKey string

	// Provider and Model identify the active model.
	Provider string
	Model    string

	// WorkspaceDir is the workspace root for direct (non-sandboxed) sessions.
	WorkspaceDir string

	// Sandbox describes the sandboxed execution context, if any.
	Sandbox *sandbox.Context

	PatchTool PatchToolConfig

	// ScopeKey is the opaque accounting key forwarded to the execution
	// tools. Generated when empty.
	ScopeKey string

	// ReplyToThread is forwarded to the messaging catalog (see
	// MessagingParams).
	ReplyToThread *bool

	// Containment overrides the path containment check. Defaults to the
	// lexical check.
	Containment sandbox.Containment

	// Scrubber overrides the schema keyword scrubber. Defaults to
	// schema.DefaultScrubber.
	Scrubber schema.Scrubber

	// Metrics is optional.
	Metrics *metrics.Assembly
}

// Assembler composes the ordered tool list for one conversation turn.
type Assembler struct {
	cfg Config
	src Sources
}

// New validates the configuration and sources and returns an Assembler.
func New(cfg Config, src Sources) (*Assembler, error) {
	if src.Coding == nil {
		return nil, errors.New("coding tool source is required")
	}
	if src.Exec == nil {
		return nil, errors.New("exec tool source is required")
	}
	if src.BackgroundProcess == nil {
		return nil, errors.New("background process tool source is required")
	}
	if cfg.Containment == nil {
		cfg.Containment = sandbox.Lexical{}
	}
	if cfg.Scrubber == nil {
		cfg.Scrubber = schema.DefaultScrubber()
	}
	if cfg.ScopeKey == "" {
		cfg.ScopeKey = uuid.NewString()
	}
	return &Assembler{cfg: cfg, src: src}, nil
}

// scope pairs a policy with the name it is reported under.
type scope struct {
	name   string
	policy policy.Policy
}

// Assemble runs the provisioning pipeline and returns the final ordered tool
// list. The passed context doubles as the assembly-level cancellation source
// bound into every tool (cancelling it cancels in-flight and future calls).
//
// Completion is atomic: a failure in any sourcing step fails the whole
// assembly rather than silently omitting a category of tools. Duplicate names
// from misconfigured catalogs are not rejected here; that is a downstream
// error.
func (a *Assembler) Assemble(ctx context.Context) ([]*tool.Tool, error) {
	cfg := a.cfg
	log := clog.FromContext(ctx)

	// Execution context and workspace root.
	root := cfg.WorkspaceDir
	if cfg.Sandbox.Active() {
		root = cfg.Sandbox.Root()
	}

	// Policy chain: each scope must independently pass.
	agentID, effective := policy.ResolveEffectivePolicy(cfg.Policy, cfg.SessionKey)
	scopes := []scope{{"effective", effective}}
	if cfg.Sandbox.Active() {
		scopes = append(scopes, scope{"sandbox", cfg.Sandbox.Policy()})
	}
	if policy.IsSubagent(cfg.SessionKey) {
		scopes = append(scopes, scope{"subagent", policy.ResolveSubagentPolicy(cfg.Policy)})
	}

	backgroundAllowed := allowedBy(processToolName, scopes)
	execParams := ExecParams{
		WorkspaceDir:      root,
		Sandbox:           cfg.Sandbox,
		BackgroundAllowed: backgroundAllowed,
		ScopeKey:          cfg.ScopeKey,
	}

	// Source all catalogs; any failure fails the assembly.
	var (
		coding    []*tool.Tool
		execT     *tool.Tool
		processT  *tool.Tool
		patchT    *tool.Tool
		browser   []*tool.Tool
		messaging []*tool.Tool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		coding, err = a.src.Coding(gctx, CodingParams{WorkspaceDir: root, Sandbox: cfg.Sandbox})
		if err != nil {
			return fmt.Errorf("sourcing coding tools: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		run, err := a.src.Exec(gctx, execParams)
		if err != nil {
			return fmt.Errorf("sourcing exec handler: %w", err)
		}
		execT, err = execTool(backgroundAllowed, run)
		return err
	})
	g.Go(func() error {
		run, err := a.src.BackgroundProcess(gctx, execParams)
		if err != nil {
			return fmt.Errorf("sourcing background process handler: %w", err)
		}
		processT, err = processTool(run)
		return err
	})
	if a.src.ApplyPatch != nil && patchToolWanted(cfg.PatchTool, cfg.Provider, cfg.Model) {
		g.Go(func() error {
			run, err := a.src.ApplyPatch(gctx, PatchParams{WorkspaceDir: root, Sandbox: cfg.Sandbox})
			if err != nil {
				return fmt.Errorf("sourcing patch handler: %w", err)
			}
			patchT, err = patchTool(run)
			return err
		})
	}
	if a.src.Browser != nil {
		g.Go(func() error {
			var err error
			browser, err = a.src.Browser(gctx, BrowserParams{Sandbox: cfg.Sandbox, Browser: browserSettings(cfg.Sandbox)})
			if err != nil {
				return fmt.Errorf("sourcing browser tools: %w", err)
			}
			return nil
		})
	}
	if a.src.Messaging != nil {
		g.Go(func() error {
			var err error
			messaging, err = a.src.Messaging(gctx, MessagingParams{SessionKey: cfg.SessionKey, ReplyToThread: cfg.ReplyToThread})
			if err != nil {
				return fmt.Errorf("sourcing messaging tools: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Compose the ordered list: base coding tools (the default execution
	// tool is constructed separately, and write/edit are omitted for a
	// read-only sandbox workspace), then exec and process, then patch,
	// then the supplemental catalogs.
	tools := make([]*tool.Tool, 0, len(coding)+len(browser)+len(messaging)+3)
	for _, t := range coding {
		name := policy.Normalize(t.Name)
		if name == execToolName {
			continue
		}
		if cfg.Sandbox.ReadOnlyWorkspace() && isWriteTool(name) {
			log.With("tool", t.Name).Info("Omitting write tool for read-only sandbox workspace")
			continue
		}
		tools = append(tools, t)
	}
	tools = append(tools, execT, processT)
	if patchT != nil {
		tools = append(tools, patchT)
	}
	tools = append(tools, browser...)
	tools = append(tools, messaging...)

	// Policy gating: a tool survives only if it clears every scope.
	kept := tools[:0]
	for _, t := range tools {
		if s, ok := denyingScope(t.Name, scopes); ok {
			log.With("tool", t.Name).With("scope", s).Info("Tool denied by policy")
			cfg.Metrics.RecordDenied(ctx, s, policy.Normalize(t.Name))
			continue
		}
		kept = append(kept, t)
	}
	tools = kept

	// Schema normalization and capability wrapping.
	for i, t := range tools {
		normalized, err := schema.Normalize(ctx, t.Schema, cfg.Scrubber)
		if err != nil {
			return nil, fmt.Errorf("normalizing schema for %s: %w", t.Name, err)
		}
		t = t.Clone()
		t.Schema = normalized

		wrappers := []wrap.Wrapper{
			recordFailures(cfg.Metrics),
			wrap.Cancellation(ctx),
			wrap.LegacyParams(),
			wrap.PathContainment(cfg.Sandbox.Root(), cfg.Containment),
		}
		if policy.Normalize(t.Name) == "read" {
			wrappers = append(wrappers, wrap.ImageCorrection())
		}
		tools[i] = wrap.Apply(t, wrappers...)
	}

	cfg.Metrics.RecordProvisioned(ctx, len(tools), agentID)
	log.With("agent", agentID).With("tools", len(tools)).Info("Assembled tool list")
	return tools, nil
}

func allowedBy(name string, scopes []scope) bool {
	for _, s := range scopes {
		if !s.policy.Allows(name) {
			return false
		}
	}
	return true
}

func denyingScope(name string, scopes []scope) (string, bool) {
	for _, s := range scopes {
		if !s.policy.Allows(name) {
			return s.name, true
		}
	}
	return "", false
}

// writeToolNames are the coding tools that modify the workspace.
var writeToolNames = map[string]bool{
	"write": true,
	"edit":  true,
}

func isWriteTool(canonical string) bool {
	return writeToolNames[canonical]
}

func browserSettings(sb *sandbox.Context) sandbox.BrowserSettings {
	if sb == nil {
		return sandbox.BrowserSettings{}
	}
	return sb.Browser
}

// recordFailures counts failed wrapped calls. Placed outermost so it also
// observes failures raised by the safety wrappers.
func recordFailures(m *metrics.Assembly) wrap.Wrapper {
	if m == nil {
		return nil
	}
	return func(t *tool.Tool) *tool.Tool {
		next := t.Execute
		out := t.Clone()
		out.Execute = func(ctx context.Context, inv tool.Invocation) (*tool.Result, error) {
			res, err := next(ctx, inv)
			if err != nil {
				m.RecordCallFailure(ctx, inv.Name)
			}
			return res, err
		}
		return out
	}
}
