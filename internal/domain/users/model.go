package users

// User es una credencial del archivo users. Password puede ser hash bcrypt o texto plano
// (archivos editados a mano); ver Service.Authenticate.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}
