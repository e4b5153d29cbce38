package kyc

// DocumentStore es el contrato mínimo con el object storage: guarda un blob y
// devuelve la URL estable donde quedó publicado. Lo implementa el adaptador S3
// de infraestructura; el uso de interfaz mantiene el caso de uso sin SDK.
type DocumentStore interface {
	Upload(key, contentType string, data []byte) (string, error)
}

// DocumentSource entrada polimórfica del submit: o una referencia inline ya
// resuelta, o un blob subido que hay que almacenar primero.
type DocumentSource struct {
	InlineRef string

	Blob     []byte
	Filename string
	Mimetype string
}

// InlineReference documento ya referenciado por un string (variante sin upload).
func InlineReference(ref string) DocumentSource {
	return DocumentSource{InlineRef: ref}
}

// UploadedBlob documento subido como archivo en la petición.
func UploadedBlob(data []byte, filename, mimetype string) DocumentSource {
	return DocumentSource{Blob: data, Filename: filename, Mimetype: mimetype}
}
