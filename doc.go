// # mdindex
//
// `mdindex` prints a navigable table of contents for a Markdown document. It
// scans the document's headings and emits a nested Markdown list whose entries
// link to the anchors GitHub generates for each heading.
//
// Key capabilities:
//
//   - recognize ATX headings (`#` through `######`); lines with seven or more
//     hashes are plain text.
//   - derive GitHub-style anchors: lowercase, punctuation removed, spaces
//     turned into hyphens. Non-ASCII letters and digits are preserved.
//   - keep a single leading emoji (for example `## 🚀 Getting Started`) in
//     front of the link instead of inside it.
//   - re-base the outline with `--base-level`, so `##` can become the top
//     level and every shallower heading is dropped.
//   - optional outline numbering (`1·`, `1.1·`, `2·`) and plain-text output.
//
// ## Usage
//
//	go run . [flags] <file.md>
//
// Examples:
//
//   - Print a linked index for a README:
//
//     go run . README.md
//
//   - Number the second-level headings and below, without links:
//
//     go run . --base-level 2 --numbered --no-links README.md
//
//   - Write the index to a file:
//
//     go run . -o TOC.md README.md
//
// ## Supported Flags
//
//   - `--base-level N`: minimum heading depth to include (default 1).
//   - `--no-links`: emit plain indented text.
//   - `--numbered`: prefix every entry with its outline number.
//   - `--commonmark`: extract headings with goldmark instead of the line
//     scanner. Setext headings are included and `#` lines inside fenced code
//     are ignored.
//   - `-o FILE`: write the index to `FILE` (stdout when omitted).
//   - `--config FILE`: read defaults from YAML (`base_level`, `links`,
//     `numbered`, `commonmark`, `output`).
//   - `--log-level LEVEL`: diagnostic verbosity on stderr (default `warn`).
//
// Single-dash spellings such as `-numbered` are accepted as well.
//
// ## Limitations
//
// Duplicate titles produce duplicate anchors, and emoji made of several code
// points (skin tones, variation selectors, ZWJ sequences) are not split off
// as icons.
//
// ## Shell Completion
//
//	go run . completion bash        # bash
//	go run . completion zsh         # zsh
//	go run . completion fish | source
//	go run . completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
//	go run . gen-docs ./docs/cli
package main
