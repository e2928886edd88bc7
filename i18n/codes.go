package i18n

// Error and validation codes returned by the API.
var codes = map[string]map[string]string{
	"fr": {
		"required":             "Requis",
		"invalid_choice":       "Valeur non autorisée",
		"invalid_email":        "Adresse email invalide",
		"invalid_type":         "Type de donnée invalide",
		"invalid_json":         "Corps JSON invalide",
		"id_mismatch":          "L'identifiant ne correspond pas",
		"must_not_be_negative": "Ne peut pas être négatif",
		"too_short":            "Trop court",
		"already_registered":   "Adresse déjà utilisée",
		"duplicate":            "Doublon",
		"constraint":           "Contrainte non respectée",
		"validation_failed":    "Données invalides",
		"unauthorized":         "Authentification requise",
		"invalid_credentials":  "Identifiants invalides",
		"not_found":            "Élément introuvable",
		"internal_error":       "Erreur interne",
	},
	"en": {
		"required":             "Required",
		"invalid_choice":       "Value not allowed",
		"invalid_email":        "Invalid email address",
		"invalid_type":         "Invalid data type",
		"invalid_json":         "Invalid JSON body",
		"id_mismatch":          "Identifier does not match",
		"must_not_be_negative": "Must not be negative",
		"too_short":            "Too short",
		"already_registered":   "Email already registered",
		"duplicate":            "Duplicate",
		"constraint":           "Constraint violated",
		"validation_failed":    "Invalid data",
		"unauthorized":         "Authentication required",
		"invalid_credentials":  "Invalid login credentials",
		"not_found":            "Item not found",
		"internal_error":       "Internal error",
	},
	"ar": {
		"required":             "مطلوب",
		"invalid_choice":       "قيمة غير مسموح بها",
		"invalid_email":        "بريد إلكتروني غير صالح",
		"invalid_type":         "نوع بيانات غير صالح",
		"invalid_json":         "محتوى JSON غير صالح",
		"id_mismatch":          "المعرف غير متطابق",
		"must_not_be_negative": "لا يمكن أن يكون سالباً",
		"too_short":            "قصير جداً",
		"already_registered":   "البريد الإلكتروني مستخدم بالفعل",
		"duplicate":            "مكرر",
		"constraint":           "قيد غير محترم",
		"validation_failed":    "بيانات غير صالحة",
		"unauthorized":         "المصادقة مطلوبة",
		"invalid_credentials":  "بيانات الدخول غير صحيحة",
		"not_found":            "العنصر غير موجود",
		"internal_error":       "خطأ داخلي",
	},
	"es": {
		"required":             "Requerido",
		"invalid_choice":       "Valor no permitido",
		"invalid_email":        "Correo no válido",
		"invalid_type":         "Tipo de dato no válido",
		"invalid_json":         "Cuerpo JSON no válido",
		"id_mismatch":          "El identificador no coincide",
		"must_not_be_negative": "No puede ser negativo",
		"too_short":            "Demasiado corto",
		"already_registered":   "Correo ya registrado",
		"duplicate":            "Duplicado",
		"constraint":           "Restricción no respetada",
		"validation_failed":    "Datos no válidos",
		"unauthorized":         "Autenticación requerida",
		"invalid_credentials":  "Credenciales no válidas",
		"not_found":            "Elemento no encontrado",
		"internal_error":       "Error interno",
	},
}
