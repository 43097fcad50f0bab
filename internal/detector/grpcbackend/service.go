package grpcbackend

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Fully qualified names of the inference services. Payloads use the
// well-known protobuf types: the request is a BytesValue carrying a JPEG,
// the response a Struct.
const (
	FaceDetectorService     = "moodverse.inference.v1.FaceDetector"
	AffectClassifierService = "moodverse.inference.v1.AffectClassifier"

	detectMethod   = "/" + FaceDetectorService + "/Detect"
	classifyMethod = "/" + AffectClassifierService + "/Classify"
)

// FaceDetectorServer is implemented by inference servers. The response
// struct holds {"faces": [{"x","y","width","height","score"}]}.
type FaceDetectorServer interface {
	Detect(ctx context.Context, image *wrapperspb.BytesValue) (*structpb.Struct, error)
}

// AffectClassifierServer is implemented by inference servers. The response
// struct holds {"mood": "<label>"}.
type AffectClassifierServer interface {
	Classify(ctx context.Context, image *wrapperspb.BytesValue) (*structpb.Struct, error)
}

// RegisterFaceDetectorServer registers srv on s.
func RegisterFaceDetectorServer(s grpc.ServiceRegistrar, srv FaceDetectorServer) {
	s.RegisterService(&grpc.ServiceDesc{
		ServiceName: FaceDetectorService,
		HandlerType: (*FaceDetectorServer)(nil),
		Methods: []grpc.MethodDesc{{
			MethodName: "Detect",
			Handler:    unaryHandler(detectMethod, func(srv any, ctx context.Context, in *wrapperspb.BytesValue) (*structpb.Struct, error) {
				return srv.(FaceDetectorServer).Detect(ctx, in)
			}),
		}},
	}, srv)
}

// RegisterAffectClassifierServer registers srv on s.
func RegisterAffectClassifierServer(s grpc.ServiceRegistrar, srv AffectClassifierServer) {
	s.RegisterService(&grpc.ServiceDesc{
		ServiceName: AffectClassifierService,
		HandlerType: (*AffectClassifierServer)(nil),
		Methods: []grpc.MethodDesc{{
			MethodName: "Classify",
			Handler:    unaryHandler(classifyMethod, func(srv any, ctx context.Context, in *wrapperspb.BytesValue) (*structpb.Struct, error) {
				return srv.(AffectClassifierServer).Classify(ctx, in)
			}),
		}},
	}, srv)
}

type imageCall func(srv any, ctx context.Context, in *wrapperspb.BytesValue) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call imageCall) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(wrapperspb.BytesValue)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(srv, ctx, req.(*wrapperspb.BytesValue))
		})
	}
}
