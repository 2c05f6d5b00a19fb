package catalog

import (
	"sort"

	"locshare/internal/models"
	"locshare/pkg/i18n"
)

// BaseLanguage is the language every catalog is overlaid on.
const BaseLanguage = "english"

var builtin = map[string]models.StringTable{
	"spanish": {
		i18n.KeyTitle:        "Comparte tu ubicación",
		i18n.KeySubtitle:     "Usamos tu ubicación para encontrar las ofertas de empleo más cercanas.",
		i18n.KeyConsent:      "Al compartir, aceptas que guardemos tu ubicación para buscar empleos.",
		i18n.KeyBtnLocate:    "Usar mi ubicación actual",
		i18n.KeyBtnShare:     "Compartir ubicación",
		i18n.StatusLocating:  "Localizando...",
		i18n.StatusDetected:  "Ubicación detectada. Ajusta el marcador si es necesario y compártela.",
		i18n.StatusError:     "No pudimos obtener tu ubicación. Por favor, concede los permisos.",
		i18n.StatusSaving:    "Guardando tu ubicación...",
		i18n.StatusSaved:     "Ubicación guardada. Ya puedes cerrar esta página.",
		i18n.StatusSaveError: "Error al guardar la ubicación. Inténtalo de nuevo.",
	},
	"french": {
		i18n.KeyTitle:        "Partagez votre position",
		i18n.KeySubtitle:     "Nous utilisons votre position pour trouver les offres d'emploi les plus proches.",
		i18n.KeyConsent:      "En partageant, vous acceptez que nous enregistrions votre position pour trouver des emplois.",
		i18n.KeyBtnLocate:    "Utiliser ma position actuelle",
		i18n.KeyBtnShare:     "Partager la position",
		i18n.StatusLocating:  "Localisation...",
		i18n.StatusDetected:  "Position détectée. Ajustez le marqueur si besoin, puis partagez.",
		i18n.StatusError:     "Impossible d'obtenir votre position. Veuillez autoriser l'accès.",
		i18n.StatusSaving:    "Enregistrement de votre position...",
		i18n.StatusSaved:     "Position enregistrée. Vous pouvez fermer cette page.",
		i18n.StatusSaveError: "Erreur lors de l'enregistrement. Veuillez réessayer.",
	},
	"hindi": {
		i18n.KeyTitle:        "अपना स्थान साझा करें",
		i18n.KeySubtitle:     "हम आपके नज़दीकी नौकरी के अवसर खोजने के लिए आपके स्थान का उपयोग करते हैं।",
		i18n.KeyConsent:      "साझा करके, आप नौकरियों से मिलान के लिए अपना स्थान संग्रहीत करने की सहमति देते हैं।",
		i18n.KeyBtnLocate:    "मेरा वर्तमान स्थान उपयोग करें",
		i18n.KeyBtnShare:     "स्थान साझा करें",
		i18n.StatusLocating:  "स्थान खोजा जा रहा है...",
		i18n.StatusDetected:  "स्थान मिल गया। ज़रूरत हो तो मार्कर बदलें, फिर साझा करें।",
		i18n.StatusError:     "आपका स्थान प्राप्त नहीं हो सका। कृपया अनुमति दें।",
		i18n.StatusSaving:    "आपका स्थान सहेजा जा रहा है...",
		i18n.StatusSaved:     "स्थान सहेज लिया गया। अब आप यह पेज बंद कर सकते हैं।",
		i18n.StatusSaveError: "स्थान सहेजने में त्रुटि। कृपया पुनः प्रयास करें।",
	},
}

// Builtin returns a copy of the compiled-in catalog for language.
func Builtin(language string) (models.StringTable, bool) {
	if language == BaseLanguage {
		return i18n.Defaults(), true
	}
	src, ok := builtin[language]
	if !ok {
		return nil, false
	}
	table := make(models.StringTable, len(src))
	for k, v := range src {
		table[k] = v
	}
	return table, true
}

// BuiltinLanguages lists every compiled-in catalog, base language included.
func BuiltinLanguages() []string {
	langs := []string{BaseLanguage}
	for lang := range builtin {
		langs = append(langs, lang)
	}
	sort.Strings(langs[1:])
	return langs
}
