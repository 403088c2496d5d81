package ltc5599

// freqThresholdsKHz is the LO tuning table from the datasheet, as descending
// kHz thresholds. The tuning code for an input is one plus the index of the
// first threshold the input exceeds; inputs at or below the final threshold
// take the lowest tuning code, 121.
var freqThresholdsKHz = [...]uint32{
	1249100, // code 1
	1248600, // code 2
	1238100,
	1214100,
	1191200,
	1165600,
	1141000,
	1120600,
	1100500,
	1069500,
	1039599,
	1023100,
	1007100,
	988300,
	961800,
	941300,
	921500,
	895200,
	877600,
	863600,
	843200,
	826900,
	807000,
	792300,
	772200,
	752700,
	734000,
	724200,
	704600,
	688700,
	673200,
	655200,
	638100,
	624600,
	611900,
	598400,
	585100,
	573900,
	563100,
	548100,
	538100,
	529100,
	518500,
	507000,
	497700,
	488000,
	471500,
	457700,
	448700,
	437400,
	426600,
	417500,
	407500,
	398000,
	390100,
	382800,
	376600,
	369800,
	353100,
	339000,
	332600,
	327200,
	320600,
	313700,
	309100,
	304500,
	288100,
	278300,
	274200,
	270300,
	266000,
	261899,
	258200,
	254100,
	243600,
	233800,
	230800,
	228000,
	220200,
	212600,
	210000,
	207600,
	202100,
	196200,
	193700,
	191200,
	186600,
	182000,
	179400,
	176000,
	170100,
	165000,
	162500,
	160000,
	156700,
	153600,
	151100,
	148600,
	142500,
	139600,
	136500,
	134300,
	131200,
	128100,
	126000,
	123800,
	121300,
	118300,
	115700,
	113500,
	111300,
	109500,
	107600,
	105600,
	103000,
	100300,
	98500,
	96600,
	94700,
	93000, // code 120
}

// freqToCtrlWord converts a carrier frequency in kHz to the chip's 7-bit LO
// tuning code. Inputs above the top threshold saturate to code 1, inputs at
// or below the bottom threshold to code 121.
func freqToCtrlWord(khz uint32) byte {
	for i, thr := range freqThresholdsKHz {
		if khz > thr {
			return byte(i + 1)
		}
	}
	return 121
}

// ctrlWordToHz approximates the carrier frequency for a raw tuning code with
// a cubic fit of the tuning table. Deliberately not an exact inverse of
// freqToCtrlWord: the write path uses the table, the read path this curve.
func ctrlWordToHz(w byte) int64 {
	x := int64(w)
	return -553*x*x*x + 198810*x*x - 26120002*x + 1319492809
}
