package boosted

var (
	tagRatio            = byte(0x20)
	tagDecimalEqReward  = byte(0x21)
	tagDecimalEqBooster = byte(0x22)
)
