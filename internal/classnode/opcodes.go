package classnode

// Opcodes carrying symbolic operands.
const (
	Ldc             = 18
	GetStatic       = 178
	PutStatic       = 179
	GetField        = 180
	PutField        = 181
	InvokeVirtual   = 182
	InvokeSpecial   = 183
	InvokeStatic    = 184
	InvokeInterface = 185
	InvokeDynamic   = 186
	New             = 187
	ANewArray       = 189
	CheckCast       = 192
	InstanceOf      = 193
	MultiANewArray  = 197
)

// Method handle reference kinds.
const (
	HGetField         = 1
	HGetStatic        = 2
	HPutField         = 3
	HPutStatic        = 4
	HInvokeVirtual    = 5
	HInvokeStatic     = 6
	HInvokeSpecial    = 7
	HNewInvokeSpecial = 8
	HInvokeInterface  = 9
)
