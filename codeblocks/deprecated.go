package codeblocks

// Former names of the code block types, kept so older code blocks build.
type (
	// Deprecated: use API.
	APICodeBlock = API
	// Deprecated: use APIWithStorage.
	APICodeBlockWithStorage = APIWithStorage
	// Deprecated: use Configuration.
	ConfigurationCodeBlock = Configuration
	// Deprecated: use DataStorage.
	DataStorageCodeBlock = DataStorage
	// Deprecated: use Function.
	FunctionCodeBlock = Function
	// Deprecated: use PersistentDataStorage.
	PersistentDataStorageCodeBlock = PersistentDataStorage
	// Deprecated: use SQL.
	SQLCodeBlock = SQL
)
