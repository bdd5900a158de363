package common

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	inErrors "github.com/booktime/storefront/internal/errors"
	"github.com/booktime/storefront/internal/log"
	"github.com/booktime/storefront/internal/otel"
)

func CreateToken(
	c context.Context,
	userId uuid.UUID,
	secretKey string,
) (string, error) {
	c, span := otel.Tracer.Start(c, "CreateToken")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CreateToken").
		Str(log.KeyUserID, userId.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "creating session token").Logger()
	logger.Trace().Msg("creating session token")
	tokenCreationTime := time.Now()
	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{AudienceStorefront},
			Issuer:    AppStorefrontService,
			Subject:   userId.String(),
			ExpiresAt: jwt.NewNumericDate(tokenCreationTime.Add(30 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(tokenCreationTime),
		},
	)
	logger.Trace().Msg("created session token")

	logger = logger.With().Str(log.KeyProcess, "signing token").Logger()
	logger.Trace().Msg("signing token")
	signedToken, err := token.SignedString([]byte(secretKey))
	if err != nil {
		err = fmt.Errorf("failed signing token with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("signed token")

	return signedToken, nil
}

func VerifyToken(c context.Context, token string, secretKey string) (*jwt.Token, error) {
	c, span := otel.Tracer.Start(c, "VerifyToken")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "VerifyToken").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "parsing claims").Logger()
	logger.Trace().Msg("parsing claims")
	jwtToken, err := jwt.ParseWithClaims(token,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		},
		jwt.WithAudience(AudienceStorefront),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithIssuer(AppStorefrontService),
	)
	if err != nil {
		err = fmt.Errorf("failed parsing claims with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Trace().Msg("parsed claims")

	logger = logger.With().Str(log.KeyProcess, "validating token").Logger()
	logger.Trace().Msg("validating token")
	if !jwtToken.Valid {
		err = fmt.Errorf("failed validating token with error=%w", inErrors.ErrTokenInvalid)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, inErrors.ErrTokenInvalid
	}
	logger.Trace().Msg("validated token")

	return jwtToken, nil
}

type jwtToken struct{}

func AttachJwtToken(c context.Context, jwt *jwt.Token) context.Context {
	return context.WithValue(c, jwtToken{}, jwt)
}

func JwtTokenFromContext(c context.Context) (*jwt.Token, bool) {
	token, ok := c.Value(jwtToken{}).(*jwt.Token)
	return token, ok
}

func UserIdFromJwtToken(c context.Context) (uuid.UUID, error) {
	c, span := otel.Tracer.Start(c, "UserIdFromJwtToken")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserIdFromJwtToken").
		Str(log.KeyProcess, "getting userId from jwtToken").
		Logger()

	jwt, ok := JwtTokenFromContext(c)
	if !ok {
		err := fmt.Errorf("failed getting jwtToken from context with error=%w", inErrors.ErrEmptyAuth)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return uuid.Nil, err
	}

	subject, err := jwt.Claims.GetSubject()
	if err != nil {
		err = fmt.Errorf("failed getting subject from jwt with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return uuid.Nil, err
	}

	userId, err := uuid.Parse(subject)
	if err != nil {
		err = fmt.Errorf("failed parsing subject=%s with error=%w", subject, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return uuid.Nil, err
	}
	logger.Trace().Msgf("parsed subject as userId=%s", userId.String())

	return userId, nil
}
