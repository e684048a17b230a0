package dialect

var builtin = []Entry{
	{
		Key:  "access",
		Name: "Microsoft Access",
		Instruction: `You are a MS Access SQL expert. Rules:
1. Use Access-specific syntax (COUNTER for auto-increment, DATETIME for dates)
2. Maximum VARCHAR length 255
3. Use DOUBLE for floating numbers
4. No SERIAL type, use COUNTER instead
5. Table names in PascalCase`,
	},
	{
		Key:  "postgres",
		Name: "PostgreSQL",
		Instruction: `You are a PostgreSQL expert. Rules:
1. Use PostgreSQL syntax (SERIAL for auto-increment)
2. Use TEXT type for long strings
3. Use TIMESTAMPTZ for timestamps
4. Use lowercase table names with underscores
5. Include schema if necessary`,
	},
	{
		Key:  "mysql",
		Name: "MySQL",
		Instruction: `You are a MySQL expert. Rules:
1. Use MySQL syntax (AUTO_INCREMENT)
2. Use VARCHAR(191) for indexes
3. Use DATETIME(3) for millisecond precision
4. Use backticks for identifiers
5. Include ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
}
