package plan

const (
	// OneNullRowInputFormat yields exactly one row with every column null.
	OneNullRowInputFormat = "OneNullRowInputFormat"
	// HiveIgnoreKeyTextOutputFormat writes values and drops output keys.
	HiveIgnoreKeyTextOutputFormat = "HiveIgnoreKeyTextOutputFormat"
	// NullStructSerDe deserializes every record into an empty struct.
	NullStructSerDe = "NullStructSerDe"

	TextInputFormat = "TextInputFormat"
	LazySimpleSerDe = "LazySimpleSerDe"

	SerializationLib = "serialization.lib"
)
