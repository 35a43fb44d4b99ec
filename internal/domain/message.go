package domain

type BlockKind int

const (
	BlockDivider BlockKind = iota
	BlockSection
	BlockContext
)

// A single display block of a formatted chat message.
// Text and Fields carry chat markup; a section uses either Text or Fields.
type Block struct {
	Kind   BlockKind
	Text   string
	Fields []string
}

// Ordered display blocks ready for delivery to a chat client.
type FormattedMessage struct {
	Blocks []Block
}

func Divider() Block { return Block{Kind: BlockDivider} }

func Section(text string) Block { return Block{Kind: BlockSection, Text: text} }

func FieldSection(fields ...string) Block { return Block{Kind: BlockSection, Fields: fields} }

func Context(text string) Block { return Block{Kind: BlockContext, Text: text} }
