package agent

import "github.com/RaunakChhatwal/BashAgent/internal/conversation"

// BashTool and TextEditorTool are the two process-wide tool descriptors the
// agent offers the model; both wire forms serialize them per their own
// schema conventions (providers.RequestParams.Tools carries these).
var (
	BashTool = conversation.ToolDescriptor{
		Name:        "bash",
		Description: "Run a command in a persistent bash shell on the remote host and return its combined stdout/stderr.",
		InputSchema: `{
			"type": "object",
			"properties": {
				"command": {
					"type": "string",
					"description": "The bash command to run."
				}
			},
			"required": ["command"]
		}`,
	}

	TextEditorTool = conversation.ToolDescriptor{
		Name: "text_editor",
		Description: "View, create, and edit files on the remote host. Commands: view, create, str_replace, " +
			"insert, undo_edit.",
		InputSchema: `{
			"type": "object",
			"properties": {
				"command": {"type": "string", "enum": ["view", "create", "str_replace", "insert", "undo_edit"]},
				"path": {"type": "string", "description": "Absolute path to the target file."},
				"file_text": {"type": "string", "description": "Full file contents, required by create."},
				"view_range": {
					"type": "array",
					"items": {"type": "integer"},
					"description": "Optional [start, end] 1-based line range for view; end=-1 means to end of file."
				},
				"old_str": {"type": "string", "description": "Exact text to replace, required by str_replace."},
				"new_str": {"type": "string", "description": "Replacement text for str_replace or insert."},
				"insert_line": {"type": "integer", "description": "Line number after which to insert, required by insert."}
			},
			"required": ["command", "path"]
		}`,
	}
)

// DefaultTools is the descriptor set sent with every completion request.
var DefaultTools = []conversation.ToolDescriptor{BashTool, TextEditorTool}
