/*
Package keybinds provides customizable keyboard binding management.

Bindings are grouped by context (normal, bcc, preview, search, help,
text_input, confirm). A key is looked up in its context first and then in the
global context, so a context binding shadows a global one.

Sequences made of one repeated character, like "gg", are matched across two
key presses by MatchMultiKey.

User overrides live in keybinds.json (comments allowed):

	{
	  "version": "1.0",
	  "normal": {
	    "x": "delete",
	    "d": ""
	  }
	}

An empty action unbinds the key. Unknown actions are rejected when the file is
applied. Validator reports contexts that lose a required action, reserved keys
that were rebound and shadowed global keys.
*/
package keybinds
