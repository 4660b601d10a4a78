// Package qrcode renders text content as PNG QR codes.
//
// It exists so the CLI can write provisioning URIs as scannable images:
//
//	uri := otp.ProvisioningURI(secret, "MyApp", "user@example.com", otp.Options{})
//	png, err := qrcode.Generate(uri, 256)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("enroll.png", png, 0600)
//
// Images use medium error correction, balancing data capacity with scan
// reliability.
package qrcode
