package locale

import "github.com/nicksnyder/go-i18n/v2/i18n"

var slovenian = []*i18n.Message{
	{ID: "item_type.window", Other: "Okno"},
	{ID: "item_type.door", Other: "Vrata"},
	{ID: "item_type.balcony", Other: "Balkonska vrata"},
	{ID: "material.PVC", Other: "PVC"},
	{ID: "material.Aluminum", Other: "Aluminij"},
	{ID: "material.Wood", Other: "Les"},
	{ID: "glass.Single", Other: "Enojno"},
	{ID: "glass.Double", Other: "Dvojno"},
	{ID: "glass.Triple", Other: "Trojno"},
	{ID: "color.White", Other: "Bela"},
	{ID: "color.Brown", Other: "Rjava"},
	{ID: "color.Black", Other: "Črna"},
	{ID: "color.Gray", Other: "Siva"},
	{ID: "step.contact", Other: "Kontaktni podatki"},
	{ID: "step.items", Other: "Izdelki"},
	{ID: "step.review", Other: "Pregled"},

	{ID: MsgItemAdded, Other: "{{.Type}}: dodano v vašo ponudbo"},
	{ID: MsgItemRemoved, Other: "Izdelek odstranjen iz ponudbe"},
	{ID: MsgSubmitting, Other: "Obračunavamo vašo ponudbo..."},
	{ID: MsgSubmitted, Other: "Ponudba uspešno ustvarjena!"},
	{ID: MsgExportFailed, Other: "Ponudbe ni bilo mogoče ustvariti. Vaši podatki so ohranjeni."},
	{ID: MsgContactInvalid, Other: "Prosimo, izpolnite vse obvezne podatke"},
	{ID: MsgNoItems, Other: "Dodajte vsaj en izdelek v ponudbo"},
	{ID: MsgMissingDimensions, Other: "Prosimo, izpolnite dimenzije za vse izdelke"},
	{ID: MsgFieldRequired, Other: "To polje je obvezno"},
	{ID: MsgFieldEmail, Other: "Vnesite veljaven e-poštni naslov"},
	{ID: MsgFieldPhone, Other: "Vnesite veljavno telefonsko številko"},

	{ID: MsgDocTitle, Other: "PONUDBA ZA PVC OKNA IN VRATA"},
	{ID: MsgDocCustomer, Other: "Podatki stranke"},
	{ID: MsgDocName, Other: "Ime"},
	{ID: MsgDocEmail, Other: "E-pošta"},
	{ID: MsgDocPhone, Other: "Telefon"},
	{ID: MsgDocAddress, Other: "Naslov"},
	{ID: MsgDocMessage, Other: "Opombe"},
	{ID: MsgDocItems, Other: "Izdelki"},
	{ID: MsgDocDimensions, Other: "Dimenzije"},
	{ID: MsgDocMaterial, Other: "Material"},
	{ID: MsgDocGlass, Other: "Steklo"},
	{ID: MsgDocColor, Other: "Barva"},
	{ID: MsgDocQuantity, Other: "Količina"},
	{ID: MsgDocPrice, Other: "Cena"},
	{ID: MsgDocTotal, Other: "Skupaj"},
	{ID: MsgDocDate, Other: "Datum"},
	{ID: MsgDocValidity, Other: "Ponudba velja {{.Days}} dni od datuma izdaje."},
	{ID: MsgDocInstallation, Other: "Vključuje montažo in kakovostno izvedbo."},
}

var english = []*i18n.Message{
	{ID: "item_type.window", Other: "Window"},
	{ID: "item_type.door", Other: "Door"},
	{ID: "item_type.balcony", Other: "Balcony door"},
	{ID: "material.PVC", Other: "PVC"},
	{ID: "material.Aluminum", Other: "Aluminum"},
	{ID: "material.Wood", Other: "Wood"},
	{ID: "glass.Single", Other: "Single"},
	{ID: "glass.Double", Other: "Double"},
	{ID: "glass.Triple", Other: "Triple"},
	{ID: "color.White", Other: "White"},
	{ID: "color.Brown", Other: "Brown"},
	{ID: "color.Black", Other: "Black"},
	{ID: "color.Gray", Other: "Gray"},
	{ID: "step.contact", Other: "Contact details"},
	{ID: "step.items", Other: "Products"},
	{ID: "step.review", Other: "Review"},

	{ID: MsgItemAdded, Other: "{{.Type}} added to your quote"},
	{ID: MsgItemRemoved, Other: "Item removed from your quote"},
	{ID: MsgSubmitting, Other: "Preparing your quote..."},
	{ID: MsgSubmitted, Other: "Your quote was created successfully!"},
	{ID: MsgExportFailed, Other: "The quote could not be generated. Your data has been kept."},
	{ID: MsgContactInvalid, Other: "Please fill in all required contact details"},
	{ID: MsgNoItems, Other: "Add at least one product to your quote"},
	{ID: MsgMissingDimensions, Other: "Please enter dimensions for every product"},
	{ID: MsgFieldRequired, Other: "This field is required"},
	{ID: MsgFieldEmail, Other: "Enter a valid email address"},
	{ID: MsgFieldPhone, Other: "Enter a valid phone number"},

	{ID: MsgDocTitle, Other: "QUOTE FOR PVC WINDOWS AND DOORS"},
	{ID: MsgDocCustomer, Other: "Customer details"},
	{ID: MsgDocName, Other: "Name"},
	{ID: MsgDocEmail, Other: "Email"},
	{ID: MsgDocPhone, Other: "Phone"},
	{ID: MsgDocAddress, Other: "Address"},
	{ID: MsgDocMessage, Other: "Notes"},
	{ID: MsgDocItems, Other: "Products"},
	{ID: MsgDocDimensions, Other: "Dimensions"},
	{ID: MsgDocMaterial, Other: "Material"},
	{ID: MsgDocGlass, Other: "Glass"},
	{ID: MsgDocColor, Other: "Color"},
	{ID: MsgDocQuantity, Other: "Quantity"},
	{ID: MsgDocPrice, Other: "Price"},
	{ID: MsgDocTotal, Other: "Total"},
	{ID: MsgDocDate, Other: "Date"},
	{ID: MsgDocValidity, Other: "This quote is valid for {{.Days}} days from the date of issue."},
	{ID: MsgDocInstallation, Other: "Includes installation and quality workmanship."},
}
