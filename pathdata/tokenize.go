package pathdata

// rawCommand is the tokenizer output: one command letter occurrence
// with its still unparsed parameter text.
type rawCommand struct {
	kind   Kind
	params string
	abs    bool
}

// command maps the twelve supported letters to their kind and
// default absoluteness. Any other letter is not a command character.
var commands = map[byte]struct {
	kind Kind
	abs  bool
}{
	'M': {KindMove, true},
	'm': {KindMove, false},
	'L': {KindLine, true},
	'l': {KindLine, false},
	'H': {KindHLine, true},
	'h': {KindHLine, false},
	'V': {KindVLine, true},
	'v': {KindVLine, false},
	'C': {KindCubic, true},
	'c': {KindCubic, false},
	'Z': {KindClose, true},
	'z': {KindClose, false},
}

// tokenize scans the path data string into an ordered sequence of raw
// commands. The scanner keeps one active command letter and the start
// index of the parameter run; a new command letter flushes the pending
// run, and close-path commands are emitted eagerly since they never
// take parameters. Content seen before any command letter is flushed
// with KindUnknown, to be skipped by the decoder. The tokenizer itself
// never fails: malformed numeric content is deferred to the decoder.
func tokenize(data string) []rawCommand {
	var out []rawCommand
	active := rawCommand{kind: KindUnknown}
	start := 0
	for i := 0; i < len(data); i++ {
		cmd, ok := commands[data[i]]
		if !ok {
			continue
		}
		if params := data[start:i]; params != "" {
			active.params = params
			out = append(out, active)
		}
		if cmd.kind == KindClose {
			// close-path never takes parameters: emit eagerly, and
			// leave no active letter so trailing text is skipped
			// instead of flushing a second close.
			out = append(out, rawCommand{kind: KindClose, abs: true})
			active = rawCommand{kind: KindUnknown}
		} else {
			active = rawCommand{kind: cmd.kind, abs: cmd.abs}
		}
		start = i + 1
	}
	if params := data[start:]; params != "" {
		active.params = params
		out = append(out, active)
	}
	return out
}
