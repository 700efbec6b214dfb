package valueobjects

// cardTypeLabels maps the gateway's numeric card type codes to labels.
// The code set is fixed by the gateway; anything outside it resolves to "".
var cardTypeLabels = map[int]string{
	-1: "Unknown",
	0:  "AmericanExpressDanish",
	1:  "AmericanExpressForeign",
	2:  "DinersDanish",
	3:  "DinersForeign",
	4:  "MastercardForeign",
	5:  "MastercardDanish",
	6:  "VisaDankort",
	7:  "VisaElectronDanish",
	8:  "VisaElectronForeign",
	9:  "VisaDanish",
	10: "VisaForeign",
	11: "JCB",
	12: "ElectronOrVisaForeign",
	13: "Dankort",
	14: "MaestroDanish",
	15: "MaestroForeign",
	16: "MastercardDebitDanish",
}

// CardTypeFromCode resolves a gateway card type code to its label.
// Unmapped codes return the empty string rather than an error.
func CardTypeFromCode(code int) string {
	return cardTypeLabels[code]
}
