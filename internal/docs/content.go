package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with aleph",
		Content: topicQuickstart,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "Config file schema, fields, and defaults",
		Content: topicConfig,
	},
	{
		Name:    "protocols",
		Title:   "Protocols",
		Summary: "How a protocol's prompt is assembled and executed",
		Content: topicProtocols,
	},
	{
		Name:    "reservoirs",
		Title:   "Reservoirs",
		Summary: "Standing reference documents and access bindings",
		Content: topicReservoirs,
	},
	{
		Name:    "memory",
		Title:   "Working Memory",
		Summary: "The instance file and how outputs accumulate",
		Content: topicMemory,
	},
	{
		Name:    "artifacts",
		Title:   "Artifacts Directory",
		Summary: "Structure of .aleph/artifacts/ and what gets saved",
		Content: topicArtifacts,
	},
}

const topicQuickstart = `Quick Start
===========

1. Initialize a project:

    cd your-project
    aleph init

   This creates .aleph/config.yaml, .aleph/patterns/ and
   .aleph/reservoir/ with a four-protocol starter chain.

2. Edit .aleph/config.yaml. A chain is an ordered list of protocols —
   each names a pattern file holding its instructions and (optionally)
   the reservoirs it may read.

3. Seed the documents under .aleph/reservoir/ with whatever standing
   knowledge the chain should draw on.

4. Preview the plan without invoking the model:

    aleph run --dry-run

5. Run for real:

    aleph run

   You will be dropped into your $EDITOR to capture the user input,
   then each protocol executes in order. Outputs accumulate in the
   working-memory instance file so later protocols see earlier results.

6. Inspect the last run:

    aleph status
    aleph show Integrate
`

const topicConfig = `Configuration Reference
=======================

aleph reads .aleph/config.yaml, found by walking up from the current
directory. Paths in the config resolve relative to the .aleph/
directory unless absolute.

Top-level fields:

  name           Required. Chain name, used in display output.
  model          opus | sonnet | haiku. Default: sonnet.
  timeout        Per-protocol timeout in minutes. Default: 15.
  patterns-dir   Directory of pattern files. Default: patterns
  reservoir-dir  Directory of reservoir documents. Default: reservoir
  instance-file  Working-memory file name. Default: instance.md
  protocols      Required. Ordered list of protocol entries.

Protocol fields:

  name                  Required, unique within the chain.
  pattern               Required. Instruction file, relative to
                        patterns-dir. Missing files fail config
                        loading outright.
  included              Default true. Set false to skip the protocol
                        while keeping its slot in the chain.
  requires-commentary   Default false. When true, aleph prompts for
                        free-text commentary before the step runs.
  accesses              Mapping of label -> source, in order. A source
                        is either a reservoir file name or the literal
                        "working-memory" (the instance file name also
                        works).

Example:

  name: my-chain
  model: sonnet

  protocols:
    - name: Reflect
      pattern: Reflect.md
      requires-commentary: true
      accesses:
        Newly Atomized Abstractions: working-memory
        Abstraction Theory: Abstraction_Theory.md
`

const topicProtocols = `Protocols
=========

A protocol is one step of the chain. Each execution assembles a single
prompt from fixed parts, in this order:

  Protocol: <name>
  Instructions:
  <pattern file content>

  Access Contexts:
  ### <label>:
  <reservoir content>

  ### <label> (Working Memory):
  <instance content>

  Commentary for <name>:        (only when provided)
  <commentary>

  User Input:
  <the captured input>

  Current Instance Context:
  <instance content as of this step>

The assembled prompt goes to the model in one invocation. The trimmed
response is appended to working memory under "### <name> Output" and
recorded in the run report.

Failure isolation: a protocol that fails — unreadable memory, model
error, timeout — records its error and the chain moves on. Later
protocols still run; they simply see no section from the failed step.

Skipping: included: false records an empty result without invoking
the model or touching memory.
`

const topicReservoirs = `Reservoirs
==========

Reservoirs are standing documents under .aleph/reservoir/ — theory
notes, accumulated intuitions, reference material. They persist across
runs and are edited by you, never written by the chain.

A protocol reads a reservoir by declaring an access binding:

  accesses:
    Abstraction Theory: Abstraction_Theory.md

The label becomes the subsection title in the prompt; the source is
the file name inside reservoir-dir. Bindings resolve in declared
order. Content is trimmed of surrounding whitespace.

A missing reservoir file is not fatal: aleph prints a warning and
omits that subsection, and the protocol still runs. This is deliberate
— a chain should degrade when a reference document is absent, not
abort.

The special source "working-memory" binds the current instance file
instead of a reservoir; see 'aleph docs memory'.
`

const topicMemory = `Working Memory
==============

The instance file (default .aleph/instance.md) is the chain's working
memory. Each run resets it to:

  # Internal Reservoir Instance

  [User Input]:
  <the captured input>

Every successful protocol appends one section:

  ---
  ### <protocol name> Output

  <trimmed model response>

Later protocols see the accumulated file twice: as the "Current
Instance Context" trailer of every prompt, and through any access
binding whose source is "working-memory".

Re-running 'aleph run' with an instance file already present reuses
its [User Input] block instead of opening the editor, then resets the
file. Delete instance.md (or pass fresh input) to start clean.
`

const topicArtifacts = `Artifacts Directory
===================

When a run executes, aleph writes to .aleph/artifacts/:

  report.json       Machine-readable run report: run ID, input,
                    status, and per-step name, output, error, skipped
                    flag and duration.
  prompts/step-N.md Exact assembled prompt sent for step N.
  logs/step-N.log   Raw trimmed response from step N.

'aleph status' renders report.json; 'aleph show <protocol>' prints one
step's output. Artifacts are overwritten by the next run — commit or
copy anything you want to keep. The generated .gitignore excludes the
directory by default.
`
