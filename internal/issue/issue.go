// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	DialectNotFoundId Id = iota + 1
	DialectParseErrorId
	DialectInvalidId
	DeclarationMissingId
	DeclarationMismatchId
	StubWriteFailedId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	dialectNotFoundIssue = &Issue{
		id: DialectNotFoundId,
		mdMsg: `
# Dialect not found!

We searched for a dialect description file but couldn't find one matching
the requested module name.

## Search locations (in order of precedence):
1. Directories passed via --path
2. Directories in the IRDLPATH environment variable
3. search_paths entries in your config file
4. ~/.irdload/dialects/

## Things you can try:
- List the dialects visible on the current search path:
~~~
$ irdload list
~~~

- Remember that only the last dotted segment names the file: importing
  ` + "`compiler.dialects.arith`" + ` looks for ` + "`arith.irdl`" + `, not for a nested
  directory tree.
- Add the directory containing your file to the search path:
~~~
$ irdload import compiler.dialects.arith --path ./dialects
~~~`,
	}

	dialectParseErrorIssue = &Issue{
		id: DialectParseErrorId,
		mdMsg: `
# Failed to parse dialect description!

Your .irdl file contains syntax errors or fails to evaluate.

## Common issues:
- Invalid CUE syntax (missing quotes, braces, etc.)
- Conflicting values for the same field
- References to undefined names

## Things you can try:
- Check the error message above for the specific line/column
- Validate the file directly:
~~~
$ irdload validate path/to/arith.irdl
~~~

## Example of a valid dialect declaration:
~~~cue
arith: {
	kind: "dialect"
	operations: [
		{
			name: "add"
			operands: [{name: "lhs", type: "i32"}, {name: "rhs", type: "i32"}]
			results: [{name: "sum", type: "i32"}]
		},
	]
}
~~~`,
	}

	dialectInvalidIssue = &Issue{
		id: DialectInvalidId,
		mdMsg: `
# Invalid dialect definition!

The dialect declaration was found but does not satisfy the dialect schema.

## Common issues:
- Entity names must be lowercase identifiers (` + "`add`" + `, not ` + "`Add`" + `)
- Attribute and operation names must be unique within the dialect
- Every operand, result, and parameter needs both a name and a type
- Unknown fields are rejected

## Things you can try:
- Check the error message above for the offending field
- Validate the file directly:
~~~
$ irdload validate path/to/arith.irdl
~~~`,
	}

	declarationMissingIssue = &Issue{
		id: DeclarationMissingId,
		mdMsg: `
# Declaration not found in file!

The description file exists, but it does not contain a declaration matching
the final segment of the module name.

## How module names map to declarations:
Importing ` + "`compiler.dialects.arith`" + ` loads ` + "`arith.irdl`" + ` and then looks up
a top-level declaration named ` + "`arith`" + ` inside it.

## Things you can try:
- Check the declaration name inside the file matches the file name:
~~~cue
arith: {
	kind: "dialect"
	// ...
}
~~~

- Inspect which file was picked up:
~~~
$ irdload resolve compiler.dialects.arith
~~~`,
	}

	declarationMismatchIssue = &Issue{
		id: DeclarationMismatchId,
		mdMsg: `
# Declaration is not a dialect!

A declaration with the expected name exists, but it is not marked as a
dialect definition.

## Things you can try:
- Make sure the declaration is a struct with ` + "`kind: \"dialect\"`" + `:
~~~cue
arith: {
	kind: "dialect"
	operations: [
		{name: "add", operands: [{name: "lhs", type: "i32"}]},
	]
}
~~~

- If the declaration is intentionally something else, rename the file or
  import a different module name`,
	}

	stubWriteFailedIssue = &Issue{
		id: StubWriteFailedId,
		mdMsg: `
# Failed to write interface stub!

The dialect loaded, but the .irdli interface stub next to the source file
could not be written.

## Common causes:
- The directory containing the .irdl file is read-only
- Insufficient permissions on the file or directory
- The disk is full

## Things you can try:
- Check the permissions of the directory containing the source file
- Copy the dialect file into a writable search path directory:
~~~
$ cp arith.irdl ~/.irdload/dialects/
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the irdload configuration file.

## Configuration file locations:
- Linux: ~/.config/irdload/config.cue
- macOS: ~/Library/Application Support/irdload/config.cue
- Windows: %APPDATA%\irdload\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ irdload config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/irdload/config.cue
~~~

## Example configuration:
~~~cue
search_paths: [
	"/home/user/dialects"
]

ui: {
	color_scheme: "auto"
	verbose: false
}
~~~`,
	}

	issues = map[Id]*Issue{
		dialectNotFoundIssue.Id():     dialectNotFoundIssue,
		dialectParseErrorIssue.Id():   dialectParseErrorIssue,
		dialectInvalidIssue.Id():      dialectInvalidIssue,
		declarationMissingIssue.Id():  declarationMissingIssue,
		declarationMismatchIssue.Id(): declarationMismatchIssue,
		stubWriteFailedIssue.Id():     stubWriteFailedIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
