package retext

// Example is a known input and the output a transform must produce for it.
type Example struct {
	Name  string
	Input string
	Want  string
}

var examples = map[Transform][]Example{
	Align: {
		{
			Name: "markdown table",
			Input: "| Header | Header 2 | Header 3          |\n" +
				"| ------ | ---------------------------: | ---- |\n" +
				"| one    | two      | three three three |\n",
			Want: "| Header | Header 2 | Header 3          |\n" +
				"| ------ | -------: | ----------------- |\n" +
				"| one    | two      | three three three |\n",
		},
		{
			Name: "interlinear gloss",
			Input: `\sr ὁ | δέ | κουφὀnους | ἐστὶν | •` + "\n" +
				`\lm he | and | empty-headed | he is | ;` + "\n" +
				`\gt d-msn | P | a-mss | v-3sp | ;` + "\n",
			Want: `\sr ὁ     | δέ  | κουφὀnους    | ἐστὶν | •` + "\n" +
				`\lm he    | and | empty-headed | he is | ;` + "\n" +
				`\gt d-msn | P   | a-mss        | v-3sp | ;` + "\n",
		},
	},
	SmallCaps: {
		{Name: "lower", Input: "abcdefghijklmnopqrstuvwxyz!", Want: "ᴀʙᴄᴅᴇꜰɢʜɪᴊᴋʟᴍɴᴏᴘǫʀꜱᴛᴜᴠᴡxʏᴢ!"},
		{Name: "upper", Input: "ABCDEFGHIJKLMNOPQRSTUVWXYZ!", Want: "ᴀʙᴄᴅᴇꜰɢʜɪᴊᴋʟᴍɴᴏᴘǫʀꜱᴛᴜᴠᴡxʏᴢ!"},
		{Name: "simple text", Input: "Hello World!", Want: "ʜᴇʟʟᴏ ᴡᴏʀʟᴅ!"},
	},
	Upper: {
		{Name: "simple text", Input: "Hello World!", Want: "HELLO WORLD!"},
	},
}

// Examples returns the built-in examples for t, run by the CLI self-test.
// Examples are checked with default options.
func Examples(t Transform) []Example {
	src := examples[t]
	out := make([]Example, len(src))
	copy(out, src)
	return out
}
